package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/scriptorium-fr/scriptorium/internal/config"
	"github.com/scriptorium-fr/scriptorium/internal/database"
	"github.com/scriptorium-fr/scriptorium/internal/database/articles"
	"github.com/scriptorium-fr/scriptorium/internal/database/bible"
	"github.com/scriptorium-fr/scriptorium/internal/database/bibleentities"
	"github.com/scriptorium-fr/scriptorium/internal/database/links"
	http_controllers "github.com/scriptorium-fr/scriptorium/internal/http"
	"github.com/scriptorium-fr/scriptorium/internal/render"
	"github.com/scriptorium-fr/scriptorium/internal/scheduler"
	"github.com/scriptorium-fr/scriptorium/internal/services"
	"github.com/scriptorium-fr/scriptorium/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT or SIGTERM, then give in-flight requests the
	// configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Scriptorium v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	bibleRepo := bible.NewRepository(db.DB)
	entityRepo := bibleentities.NewRepository(db.DB)
	articleRepo := articles.NewRepository(db.DB)
	linkRepo := links.NewRepository(db.DB)

	if count, err := bibleRepo.CountVerses(cfg.Bible.TranslationID); err != nil {
		log.Printf("WARNING: Failed to count verses: %v", err)
	} else if count == 0 {
		log.Printf("WARNING: No verses for translation %q. Load them with 'import-osis'.", cfg.Bible.TranslationID)
	}

	renderer, err := render.NewArticleRenderer(cfg.Render.CacheSize)
	if err != nil {
		log.Fatalf("Failed to initialize article renderer: %v", err)
	}

	wiki := services.NewWikiService(articleRepo, linkRepo, renderer)
	reader := services.NewReaderService(bibleRepo, entityRepo, linkRepo, cfg.Bible.TranslationID)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewIndexArticleLinksQueue(wiki),
			tasks.NewReindexAllLinksQueue(wiki),
		)

		// Article edits are indexed by the workers from now on
		wiki.SetIndexQueue(taskClient)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic full reindex catches links missed by failed tasks
	var reindexScheduler *scheduler.LinkReindexScheduler
	var schedulerCtxCancel context.CancelFunc
	if cfg.LinkReindex.Enabled {
		reindexScheduler = scheduler.NewLinkReindexScheduler(wiki, cfg.LinkReindex.Schedule)

		var schedulerCtx context.Context
		schedulerCtx, schedulerCtxCancel = context.WithCancel(context.Background())
		if err := reindexScheduler.Start(schedulerCtx); err != nil {
			log.Printf("WARNING: Link reindex scheduler not started: %v", err)
			reindexScheduler = nil
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Reader:        reader,
		Wiki:          wiki,
		Entities:      entityRepo,
		Verses:        bibleRepo,
		Articles:      articleRepo,
		Database:      db,
		TranslationID: cfg.Bible.TranslationID,
		Version:       version,
		TaskClient:    taskClient,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if reindexScheduler != nil {
			reindexScheduler.Stop()
		}
		if schedulerCtxCancel != nil {
			schedulerCtxCancel()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
