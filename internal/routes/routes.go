package routes

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gamers-hub/internal/audit"
	"github.com/BruksfildServices01/gamers-hub/internal/config"
	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/handlers"
	"github.com/BruksfildServices01/gamers-hub/internal/infra/archive"
	"github.com/BruksfildServices01/gamers-hub/internal/infra/guard"
	"github.com/BruksfildServices01/gamers-hub/internal/infra/relay"
	infraRepo "github.com/BruksfildServices01/gamers-hub/internal/infra/repository"
	"github.com/BruksfildServices01/gamers-hub/internal/metrics"
	"github.com/BruksfildServices01/gamers-hub/internal/middleware"
	"github.com/BruksfildServices01/gamers-hub/internal/payment"
	"github.com/BruksfildServices01/gamers-hub/internal/receipt"
	"github.com/BruksfildServices01/gamers-hub/internal/timezone"
	ucBooking "github.com/BruksfildServices01/gamers-hub/internal/usecase/booking"
)

type Deps struct {
	DB       *gorm.DB
	Redis    *redis.Client // nil keeps the submission guard in process
	Config   *config.Config
	Log      *zap.Logger
	Registry *prometheus.Registry
}

// RegisterRoutes wires the booking API onto r. The returned func drains the
// background audit and archive workers.
func RegisterRoutes(r *gin.Engine, d Deps) (func(), error) {
	cfg := d.Config
	log := d.Log

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, errors.Wrap(err, "trusted proxies")
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORS))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	catalog := domain.DefaultCatalog()
	if len(cfg.Lounge.Slots) > 0 {
		c, err := domain.NewCatalog(cfg.Lounge.Slots)
		if err != nil {
			return nil, errors.Wrap(err, "slot catalog")
		}
		catalog = c
	}

	clock := timezone.NewLoungeClock(cfg.Lounge.Timezone)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	bookingMetrics := metrics.NewBookingMetrics(d.Registry)

	var submissionGuard domain.Guard = guard.NewLocalGuard()
	if d.Redis != nil {
		submissionGuard = guard.NewRedisGuard(d.Redis, cfg.Redis.GuardTTL, log)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(d.DB), log)

	var archiveQueue ucBooking.ArchiveQueue
	var queue *archive.Queue
	if cfg.ArchiveEnabled() {
		archiver := archive.NewS3Archiver(archive.NewS3Client(cfg.Archive), cfg.Archive.Bucket, cfg.Archive.Prefix)
		queue = archive.NewQueue(archiver, log)
		archiveQueue = queue
	}

	signer := receipt.NewSigner(cfg.Receipt.Secret, cfg.Receipt.TTL, clock)

	qr, err := payment.LoadQR(cfg.Lounge.QRPath)
	if err != nil {
		log.Warn("payment QR unavailable", zap.String("path", cfg.Lounge.QRPath), zap.Error(err))
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, catalog, clock, bookingMetrics)

	submitBookingUC := ucBooking.NewSubmitBooking(ucBooking.SubmitBookingDeps{
		Repo:      bookingRepo,
		Catalog:   catalog,
		Clock:     clock,
		Submitter: relay.NewFormRelay(cfg.Relay.URL, cfg.Relay.SlotField, cfg.Relay.Timeout),
		Guard:     submissionGuard,
		Receipts:  signer,
		Audit:     auditDispatcher,
		Archive:   archiveQueue,
		Metrics:   bookingMetrics,
		Log:       log,
	})

	verifyReceiptUC := ucBooking.NewVerifyReceipt(signer)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(getAvailabilityUC, submitBookingUC, verifyReceiptUC, log)
	loungeHandler := handlers.NewLoungeHandler(cfg.Lounge, qr, log)

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit)

	// ======================================================
	// 🔎 OPERAÇÃO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))

	// ======================================================
	// 🌐 API PÚBLICA
	// ======================================================
	publicAPI := r.Group("/api/public")
	{
		publicAPI.GET("/lounge", loungeHandler.Info)
		publicAPI.GET("/payment/qr", loungeHandler.PaymentQR)

		publicAPI.GET("/slots", publicHandler.ListSlots)
		publicAPI.GET("/availability", publicHandler.Availability)
		publicAPI.POST("/bookings", middleware.RateLimitMiddleware(limiter, log), publicHandler.CreateBooking)
		publicAPI.GET("/receipts/:token", publicHandler.GetReceipt)
	}

	shutdown := func() {
		auditDispatcher.Close()
		queue.Close()
	}
	return shutdown, nil
}
