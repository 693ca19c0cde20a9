// Package app wires the HTTP surface together
package app

import (
	"fmt"
	"time"

	"therapyhq/practice-api/app/auth"
	"therapyhq/practice-api/app/client"
	"therapyhq/practice-api/app/insight"
	"therapyhq/practice-api/app/media"
	"therapyhq/practice-api/app/note"
	"therapyhq/practice-api/app/root"
	"therapyhq/practice-api/app/session"
	"therapyhq/practice-api/app/tenant"
	"therapyhq/practice-api/app/user"
	"therapyhq/practice-api/aws"
	"therapyhq/practice-api/db"
	"therapyhq/practice-api/internal"
	"therapyhq/practice-api/internal/service"
	"therapyhq/practice-api/pkg/middleware"
	"therapyhq/practice-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	d := &internal.Deps{
		Argon:  security.New(),
		Mailer: service.NewMailer(),
	}

	s, err := db.NewStore(viper.GetString("storage.type"), d.Argon)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage, %w", err)
	}
	d.Store = s

	if viper.GetString("aws.bucket") != "" {
		s3, err := aws.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		d.Uploader = service.NewMediaUploader(s3)
	}

	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewAuthMiddleware(d.Store)
	jsonBody := middleware.BodySizeLimiter(1 << 20)

	// GET /			-> Welcome message
	router.GET("/", root.Welcome)

	// HEAD /heartbeat		-> Used to check if the server is alive
	router.HEAD("/heartbeat", root.Heartbeat)

	// GET /health			-> Health probe for load balancers
	router.GET("/health", root.Health)

	a := router.Group("/auth", jsonBody)
	{
		// POST /auth/register		-> Registers a tenant and its first admin
		a.POST("/register", func(c *gin.Context) { auth.Register(c, d) })

		// POST /auth/login		-> Logs in a user and returns a session token
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// GET /auth/verify		-> Confirms an email verification token
		a.GET("/verify", func(c *gin.Context) { auth.Verify(c, d) })

		// POST /auth/resend-verification -> Rotates and resends a verification token
		a.POST("/resend-verification", func(c *gin.Context) { auth.ResendVerification(c, d) })

		// POST /auth/logout		-> Clears the session cookie
		a.POST("/logout", auth.Logout)

		// GET /auth/me			-> Returns the authenticated user
		a.GET("/me", jwt, func(c *gin.Context) { auth.Me(c, d) })
	}

	t := router.Group("/tenants", jwt, jsonBody)
	{
		// POST /tenants		-> Creates a tenant
		t.POST("", func(c *gin.Context) { tenant.TenantCreate(c, d) })

		// GET /tenants			-> Lists tenants
		t.GET("", cacheFor(30), func(c *gin.Context) { tenant.TenantFetchBulk(c, d) })

		// GET /tenants/:id		-> Returns a tenant by its ID
		t.GET("/:id", func(c *gin.Context) { tenant.TenantFetch(c, d) })
	}

	u := router.Group("/users", jwt, jsonBody)
	{
		// POST /users			-> Creates a pre-verified user in a tenant
		u.POST("", func(c *gin.Context) { user.UserCreate(c, d) })

		// GET /users			-> Lists the users of a tenant
		u.GET("", func(c *gin.Context) { user.UserFetchBulk(c, d) })

		// GET /users/:id		-> Returns a user by their ID
		u.GET("/:id", func(c *gin.Context) { user.UserFetch(c, d) })
	}

	cl := router.Group("/clients", jwt, jsonBody)
	{
		// POST /clients		-> Creates a client in a tenant
		cl.POST("", func(c *gin.Context) { client.ClientCreate(c, d) })

		// GET /clients			-> Lists the clients of a tenant
		cl.GET("", func(c *gin.Context) { client.ClientFetchBulk(c, d) })

		// GET /clients/:id		-> Returns a client by their ID
		cl.GET("/:id", func(c *gin.Context) { client.ClientFetch(c, d) })

		// PUT /clients/:id		-> Updates a client
		cl.PUT("/:id", func(c *gin.Context) { client.ClientEdit(c, d) })

		// DELETE /clients/:id		-> Deletes a client
		cl.DELETE("/:id", func(c *gin.Context) { client.ClientDelete(c, d) })
	}

	se := router.Group("/sessions", jwt, jsonBody)
	{
		// POST /sessions		-> Schedules a session for a client
		se.POST("", func(c *gin.Context) { session.SessionCreate(c, d) })

		// GET /sessions		-> Lists the sessions of a client
		se.GET("", func(c *gin.Context) { session.SessionFetchBulk(c, d) })

		// GET /sessions/:id		-> Returns a session by its ID
		se.GET("/:id", func(c *gin.Context) { session.SessionFetch(c, d) })

		// PUT /sessions/:id		-> Updates a session
		se.PUT("/:id", func(c *gin.Context) { session.SessionEdit(c, d) })

		// DELETE /sessions/:id		-> Deletes a session
		se.DELETE("/:id", func(c *gin.Context) { session.SessionDelete(c, d) })
	}

	n := router.Group("/notes", jwt, jsonBody)
	{
		// POST /notes			-> Creates a note authored by a user
		n.POST("", func(c *gin.Context) { note.NoteCreate(c, d) })

		// GET /notes			-> Lists notes filtered by session or author
		n.GET("", func(c *gin.Context) { note.NoteFetchBulk(c, d) })

		// GET /notes/:id		-> Returns a note by its ID
		n.GET("/:id", func(c *gin.Context) { note.NoteFetch(c, d) })

		// PUT /notes/:id		-> Updates a note
		n.PUT("/:id", func(c *gin.Context) { note.NoteEdit(c, d) })

		// DELETE /notes/:id		-> Deletes a note
		n.DELETE("/:id", func(c *gin.Context) { note.NoteDelete(c, d) })
	}

	m := router.Group("/media", jwt)
	{
		// POST /media			-> Registers a media record for a session
		m.POST("", jsonBody, func(c *gin.Context) { media.MediaCreate(c, d) })

		// GET /media			-> Lists the media of a session
		m.GET("", func(c *gin.Context) { media.MediaFetchBulk(c, d) })

		// GET /media/:id		-> Returns a media record by its ID
		m.GET("/:id", func(c *gin.Context) { media.MediaFetch(c, d) })

		// POST /media/:id/upload	-> Uploads the media payload to object storage
		m.POST("/:id/upload", middleware.BodySizeLimiter(viper.GetInt64("upload.max_size")), func(c *gin.Context) { media.MediaUpload(c, d) })

		// DELETE /media/:id		-> Deletes a media record
		m.DELETE("/:id", func(c *gin.Context) { media.MediaDelete(c, d) })
	}

	i := router.Group("/ai-insights", jwt, jsonBody)
	{
		// POST /ai-insights		-> Stores an AI insight for a session
		i.POST("", func(c *gin.Context) { insight.InsightCreate(c, d) })

		// GET /ai-insights		-> Lists the insights of a session
		i.GET("", func(c *gin.Context) { insight.InsightFetchBulk(c, d) })

		// GET /ai-insights/:id		-> Returns an insight by its ID
		i.GET("/:id", func(c *gin.Context) { insight.InsightFetch(c, d) })

		// PUT /ai-insights/:id		-> Updates an insight
		i.PUT("/:id", func(c *gin.Context) { insight.InsightEdit(c, d) })

		// DELETE /ai-insights/:id	-> Deletes an insight
		i.DELETE("/:id", func(c *gin.Context) { insight.InsightDelete(c, d) })
	}

	return router, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
