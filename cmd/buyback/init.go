package api

import (
	"context"

	"buyback/conf"
	"buyback/internal/chain"
	"buyback/internal/dao"
	"buyback/internal/handler/asset"
	"buyback/internal/handler/market"
	"buyback/internal/handler/order"
	"buyback/internal/handler/strategy"
	"buyback/internal/handler/ticker"
	"buyback/internal/model"
	"buyback/internal/router"
	"buyback/internal/service"
	"buyback/pkg/cache"
	"buyback/pkg/kafka"
	"buyback/pkg/logger"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

func InitRouter(ctx context.Context, db *gorm.DB) Router {
	appCfg := conf.AppConfig

	assetDao := dao.NewAssetDao(db)
	priceDao := dao.NewPriceDao(db)
	orderDao := dao.NewOrderDao(db)
	strategyDao := dao.NewStrategyDao(db)

	assetService := service.NewAssetService(assetDao)
	marketService := service.NewMarketService(priceDao, cache.GetRedisClient())

	// kafka可选，没配broker就不发事件
	var producer kafka.ProducerService
	if appCfg.Kafka.Broker != "" && appCfg.Kafka.OrderTopic != "" {
		producer = kafka.NewOrderProducer(appCfg.Kafka.Broker, appCfg.Kafka.OrderTopic)
	}
	orderService := service.NewOrderService(orderDao, assetDao, marketService, producer)

	// 链上客户端可选，连不上就退化为只用库里的TVL快照
	var chainClient *chain.Client
	if appCfg.Chain.RpcUrl != "" {
		var err error
		chainClient, err = chain.NewClient(appCfg.Chain)
		if err != nil {
			logger.Warnf("chain client init failed, tvl refresh disabled: %v", err)
			chainClient = nil
		}
	}
	strategyService := service.NewStrategyService(strategyDao, assetDao, marketService, chainClient, appCfg.Strategy)
	strategyService.StartTvlRefresher(ctx)

	// 成交回报消费
	if appCfg.Kafka.Broker != "" && appCfg.Kafka.FillTopic != "" {
		consumer := kafka.NewKafkaConsumer(appCfg.Kafka.Broker)
		groupId := appCfg.Kafka.GroupId
		if groupId == "" {
			groupId = appCfg.AppName
		}
		msgCh, err := consumer.Consume(ctx, appCfg.Kafka.FillTopic, groupId)
		if err != nil {
			logger.Errorf("fill consumer start failed: %v", err)
		} else {
			go func() {
				for m := range msgCh {
					var report model.OrderFillReport
					if err := json.Unmarshal(m.Value, &report); err != nil {
						logger.Warnf("bad fill report: %v", err)
						continue
					}
					if err := orderService.ApplyFill(ctx, report); err != nil {
						logger.Errorf("apply fill for order %d: %v", report.OrderId, err)
					}
				}
			}()
		}
	}

	assetHandler := asset.NewHandler(assetService)
	marketHandler := market.NewHandler(marketService)
	orderHandler := order.NewHandler(orderService)
	strategyHandler := strategy.NewHandler(strategyService)
	tickerHandler := ticker.NewHandler(marketService)

	return router.NewApiRouter(assetHandler, marketHandler, orderHandler, strategyHandler, tickerHandler)
}
