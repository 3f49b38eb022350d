package routes

import (
	"log/slog"
	"regexp"

	adminapi "portfolio-api/internal/api/admin"
	artworksapi "portfolio-api/internal/api/artworks"
	commentsapi "portfolio-api/internal/api/comments"
	likesapi "portfolio-api/internal/api/likes"
	"portfolio-api/internal/api/respond"
	"portfolio-api/internal/app/http/middleware"
	"portfolio-api/internal/domain/access"
	"portfolio-api/internal/domain/catalog"
	"portfolio-api/internal/domain/identity"
	"portfolio-api/internal/domain/origin"
	"portfolio-api/internal/infra/metrics"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Issuer   *access.Issuer
	Catalog  *catalog.Catalog
	Identity *identity.Resolver
	CORS     origin.Policy

	// RequireKnownArtwork limits engagement to ids present in Catalog.
	RequireKnownArtwork bool

	// Metrics may be nil, which also disables GET /metrics.
	Metrics *metrics.Metrics
	Log     *slog.Logger
}

// routable is the path grammar. A request whose path matches but whose verb
// has no handler is a 405; anything else is a 404.
var routable = []*regexp.Regexp{
	regexp.MustCompile(`^/admin/login$`),
	regexp.MustCompile(`^/admin/comment/[0-9]+$`),
	regexp.MustCompile(`^/artwork/[0-9]+/(likes|liked|like|comments|comment)$`),
	regexp.MustCompile(`^/artworks(/[0-9]+)?$`),
	regexp.MustCompile(`^/health$`),
	regexp.MustCompile(`^/metrics$`),
}

func isRoutable(path string) bool {
	for _, re := range routable {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// NewRouter builds the engine with the global middleware chain and routes.
func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = slog.Default()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false

	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(d.Log, d.Metrics),
		middleware.CORS(d.CORS),
	)

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Log == nil {
		d.Log = slog.Default()
	}

	likes := &likesapi.Handler{
		Store:    likesapi.NewStore(d.DB),
		Identity: d.Identity,
		Metrics:  d.Metrics,
		Log:      d.Log,
	}
	commentStore := commentsapi.NewStore(d.DB)
	comments := &commentsapi.Handler{Store: commentStore, Metrics: d.Metrics, Log: d.Log}
	admin := &adminapi.Handler{Issuer: d.Issuer, Comments: commentStore, Metrics: d.Metrics, Log: d.Log}
	artworks := &artworksapi.Handler{Catalog: d.Catalog}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// Catalog (read only)
	r.GET("/artworks", artworks.List)
	r.GET("/artworks/:id", artworks.Get)

	// Engagement
	artwork := r.Group("/artwork/:id")
	artwork.Use(middleware.RequireNumericID("id"))
	if d.RequireKnownArtwork {
		artwork.Use(middleware.RequireKnownArtwork(d.Catalog))
	}
	artwork.GET("/likes", likes.GetLikes)
	artwork.GET("/liked", likes.GetLiked)
	artwork.POST("/like", likes.ToggleLike)
	artwork.GET("/comments", comments.ListComments)
	artwork.POST("/comment", middleware.LimitBody(middleware.MaxJSONBody), comments.AddComment)

	// Admin
	r.POST("/admin/login", middleware.LimitBody(middleware.MaxJSONBody), admin.Login)
	r.DELETE("/admin/comment/:id",
		middleware.RequireNumericID("id"),
		middleware.RequireAdmin(d.Issuer),
		admin.DeleteComment,
	)

	r.NoRoute(respond.NotFound)
	r.NoMethod(func(c *gin.Context) {
		if !isRoutable(c.Request.URL.Path) {
			respond.NotFound(c)
			return
		}
		respond.MethodNotAllowed(c)
	})
}
