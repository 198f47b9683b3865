package main

import (
	"context"
	"fmt"
	"log"
	"os"

	api "buyback/cmd/buyback"
	"buyback/conf"
	"buyback/internal/middleware"
	"buyback/pkg/cache"
	"buyback/pkg/db"
	"buyback/pkg/logger"
	"github.com/spf13/cast"
)

func main() {

	// 加载配置文件
	err := conf.LoadConfig("conf/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appCfg := conf.AppConfig
	logger.InitLogger(&appCfg.Log, appCfg.AppName)
	defer logger.Sync()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	if dbUser == "" || dbPass == "" || dbHost == "" {
		dbUser = conf.AppConfig.Username
		dbPass = conf.AppConfig.Db.Password
		dbHost = conf.AppConfig.Host
		dbPort = conf.AppConfig.Port
		dbName = conf.AppConfig.DbName
	}

	// 初始化数据库
	datasource := db.Init(db.Config{
		User:      dbUser,
		Password:  dbPass,
		Host:      dbHost,
		Port:      dbPort,
		DBName:    dbName,
		ParseTime: true,
	})

	// redis可选，没配就不走缓存
	redisHost := os.Getenv("REDIS_HOST")
	redisPort := os.Getenv("REDIS_PORT")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	if redisHost != "" && redisPort != "" {
		appCfg.Redis.Addr = fmt.Sprintf("%s:%s", redisHost, redisPort)
	}
	if redisPassword != "" {
		appCfg.Redis.Password = redisPassword
	}
	if redisDb := os.Getenv("REDIS_DB"); redisDb != "" {
		appCfg.Redis.Db = cast.ToInt(redisDb)
	}
	if appCfg.Redis.Addr != "" {
		cache.InitRedis(appCfg.Redis)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// 创建并启动服务
	srv := api.NewServer(&appCfg)
	srv.RegisterOnShutdown(func() {
		cancel()
		if datasource != nil {
			// 关闭主库链接
			if m, err := datasource.DB(); err == nil {
				_ = m.Close()
			}
		}
		cache.CloseRedis()
	})
	srvRouter := api.InitRouter(ctx, datasource)

	srv.Run(middleware.NewMiddleware(), srvRouter)
}
