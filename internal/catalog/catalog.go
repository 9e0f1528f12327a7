package catalog

import (
	"context"
	"errors"
	"fmt"

	httpadapter "shop-ledger/internal/catalog/adapter/http"
	redispersistence "shop-ledger/internal/catalog/adapter/persistence"
	mongodbpersistence "shop-ledger/internal/catalog/adapter/persistence/mongodb"
	"shop-ledger/internal/catalog/config"
	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"
	"shop-ledger/internal/catalog/usecase"
	"shop-ledger/internal/shared/eventbus"
	"shop-ledger/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogModule wires the catalog and trade-ledger components over one database.
type CatalogModule struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus eventbus.EventBusInterface

	ProductRepo    *mongodbpersistence.ProductRepository
	ImportRepo     *mongodbpersistence.ImportRepository
	ExportRepo     *mongodbpersistence.ExportRepository
	UserRepo       *mongodbpersistence.UserRepository
	Transactions   repository.TransactionRunner
	Reconciliation repository.ReconciliationLog

	ProductUsecase usecase.ProductUsecaseInterface
	UserUsecase    usecase.UserUsecaseInterface
	ImportUsecase  usecase.ImportUsecaseInterface
	ExportUsecase  usecase.ExportUsecaseInterface

	Handler     *httpadapter.CatalogHandler
	RedisClient *redis.Client
}

// NewCatalogModule creates the module. redisClient may be nil, in which case
// reconciliation entries only go to the log output.
func NewCatalogModule(
	cfg *config.Config,
	log logger.Logger,
	mongoClient *mongo.Client,
	db *mongo.Database,
	redisClient *redis.Client,
) (*CatalogModule, error) {
	if cfg == nil {
		return nil, errors.New("catalog config is required")
	}
	if db == nil {
		return nil, errors.New("catalog database is required")
	}
	if log == nil {
		log = logger.NewLogger()
	}
	log.Info("Initializing catalog module...")

	collection := func(name string) mongodbpersistence.CollectionInterface {
		return mongodbpersistence.NewMongoCollectionAdapter(db.Collection(name))
	}
	productRepo := mongodbpersistence.NewProductRepository(collection(cfg.ProductsCollection))
	importRepo := mongodbpersistence.NewImportRepository(collection(cfg.ImportsCollection))
	exportRepo := mongodbpersistence.NewExportRepository(collection(cfg.ExportsCollection))
	userRepo := mongodbpersistence.NewUserRepository(collection(cfg.UsersCollection))

	var tx repository.TransactionRunner
	if mongoClient != nil {
		tx = mongodbpersistence.NewTransactionRunner(mongoClient)
	}

	var reconciliation repository.ReconciliationLog
	if redisClient != nil {
		reconciliation = redispersistence.NewRedisReconciliationLog(redisClient, cfg.Redis.ReconciliationStream, cfg.Redis.StreamMaxLength, log)
		log.Infof("Reconciliation log writes to redis stream %s", cfg.Redis.ReconciliationStream)
	} else {
		reconciliation = redispersistence.NewLoggerReconciliationLog(log)
		log.Info("Redis disabled, reconciliation entries are logged only")
	}

	bus := eventbus.NewEventBus(log, eventbus.BusConfig{
		MaxRetries: cfg.EventMaxRetries,
		RetryDelay: cfg.EventRetryDelay,
	})
	SubscribeLedgerEvents(bus, reconciliation, log)

	productUC := usecase.NewProductUsecase(productRepo, bus, cfg.PopularProductsLimit, log)
	userUC := usecase.NewUserUsecase(userRepo, log)
	importUC := usecase.NewImportUsecase(importRepo, productRepo, tx, bus, importWriteMode(cfg.ImportWriteMode), log)
	exportUC := usecase.NewExportUsecase(exportRepo, bus, log)

	handler := httpadapter.NewCatalogHandler(productUC, userUC, importUC, exportUC, log, cfg.RequestTimeout)

	log.Infof("Catalog module ready (database=%s, import_write_mode=%s)", cfg.DatabaseName, cfg.ImportWriteMode)
	return &CatalogModule{
		Config:         cfg,
		Logger:         log,
		EventBus:       bus,
		ProductRepo:    productRepo,
		ImportRepo:     importRepo,
		ExportRepo:     exportRepo,
		UserRepo:       userRepo,
		Transactions:   tx,
		Reconciliation: reconciliation,
		ProductUsecase: productUC,
		UserUsecase:    userUC,
		ImportUsecase:  importUC,
		ExportUsecase:  exportUC,
		Handler:        handler,
		RedisClient:    redisClient,
	}, nil
}

func importWriteMode(mode string) string {
	if mode == config.ImportWriteSequential {
		return usecase.WriteModeSequential
	}
	return usecase.WriteModeTransaction
}

// SubscribeLedgerEvents routes partial import failures to the reconciliation
// log and writes an audit line for every other catalog event.
func SubscribeLedgerEvents(bus eventbus.EventBusInterface, reconciliation repository.ReconciliationLog, log logger.Logger) {
	bus.Subscribe(eventbus.EventTypeImportPartialFailure, func(ctx context.Context, event eventbus.Event) error {
		entry, ok := event.Data().(model.ReconciliationEntry)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", event.Data(), event.Type())
		}
		return reconciliation.Append(ctx, entry)
	})

	audit := log.WithComponent("audit")
	for _, eventType := range []string{
		eventbus.EventTypeProductCreated,
		eventbus.EventTypeImportRecorded,
		eventbus.EventTypeExportAdded,
	} {
		bus.Subscribe(eventType, func(ctx context.Context, event eventbus.Event) error {
			audit.WithContext(ctx).WithFields(map[string]interface{}{
				"event":  event.Type(),
				"source": event.Source(),
				"at":     event.Timestamp(),
			}).Info("catalog event")
			return nil
		})
	}
}

// RegisterRoutes mounts the catalog endpoints on router.
func (m *CatalogModule) RegisterRoutes(router fiber.Router) {
	m.Handler.RegisterRoutes(router)
}

// EnsureIndexes creates the secondary indexes of every collection.
func (m *CatalogModule) EnsureIndexes(ctx context.Context) error {
	return errors.Join(
		m.ProductRepo.EnsureIndexes(ctx),
		m.ImportRepo.EnsureIndexes(ctx),
		m.ExportRepo.EnsureIndexes(ctx),
		m.UserRepo.EnsureIndexes(ctx),
	)
}

// Stop releases module-owned resources. The mongo and redis clients belong
// to the caller.
func (m *CatalogModule) Stop() {
	removed := 0
	for _, eventType := range []string{
		eventbus.EventTypeImportPartialFailure,
		eventbus.EventTypeProductCreated,
		eventbus.EventTypeImportRecorded,
		eventbus.EventTypeExportAdded,
	} {
		removed += m.EventBus.GetSubscriberCount(eventType)
		m.EventBus.Unsubscribe(eventType)
	}
	m.Logger.Infof("Catalog module stopped (%d event handlers removed)", removed)
}
