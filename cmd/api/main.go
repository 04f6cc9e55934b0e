package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/internal/config"
	"warehouse/internal/handler"
	"warehouse/internal/infra/db"
	"warehouse/internal/infra/logger"
	infraRepo "warehouse/internal/infra/repository"
	"warehouse/internal/server"
	"warehouse/internal/usecase"
	auth "warehouse/internal/usecase/auth_usecase"
	"warehouse/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（本番は環境変数）
	_ = godotenv.Load(".env", "../.env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect db", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	//Repository（GORM実装）生成
	txMgr := infraRepo.NewTxManagerGorm(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	warehouseRepo := infraRepo.NewWarehouseGormRepository(gormDB)
	staffRepo := infraRepo.NewWarehouseStaffGormRepository(gormDB)
	supplierRepo := infraRepo.NewSupplierGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	employeeRepo := infraRepo.NewEmployeeGormRepository(gormDB)
	inboundRepo := infraRepo.NewInboundOrderGormRepository(gormDB)
	outboundRepo := infraRepo.NewOutboundOrderGormRepository(gormDB)
	alertRepo := infraRepo.NewAlertGormRepository(gormDB)
	billRepo := infraRepo.NewBillGormRepository(gormDB)
	permissionRepo := infraRepo.NewPermissionGormRepository(gormDB)
	roleRepo := infraRepo.NewRoleGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	authValidator := validator.NewAuthValidator(userRepo)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, authValidator, hasher)
	loginUC := auth.NewLoginUsecase(userRepo, authValidator, verifier, clock)
	itemUC := usecase.NewItemUsecase(txMgr, itemRepo, log)
	stockUC := usecase.NewStockUsecase(txMgr, inboundRepo, outboundRepo, log)
	alertUC := usecase.NewAlertUsecase(txMgr, alertRepo, log)
	billUC := usecase.NewBillUsecase(billRepo, idGen, clock)
	warehouseUC := usecase.NewWarehouseUsecase(warehouseRepo, staffRepo)
	partnerUC := usecase.NewPartnerUsecase(supplierRepo, customerRepo)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo)
	accessUC := usecase.NewAccessUsecase(txMgr, permissionRepo, roleRepo)

	//Handler生成
	srv, err := server.New(cfg, log,
		handler.NewAuthHandler(registerUC, loginUC),
		handler.NewWarehouseHandler(warehouseUC),
		handler.NewItemHandler(itemUC),
		handler.NewStockHandler(stockUC),
		handler.NewAlertHandler(alertUC),
		handler.NewBillHandler(billUC),
		handler.NewPartnerHandler(partnerUC),
		handler.NewEmployeeHandler(employeeUC),
		handler.NewAccessHandler(accessUC),
	)
	if err != nil {
		log.Fatal("failed to build server", zap.Error(err))
	}

	//Server起動
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	//SIGINT/SIGTERMで停止
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}
