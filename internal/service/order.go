package service

import (
	"context"
	"math/big"
	"time"

	"buyback/internal/consts"
	"buyback/internal/dao"
	"buyback/internal/model"
	"buyback/internal/model/entity"
	"buyback/internal/pricing"
	"buyback/pkg/errors"
	"buyback/pkg/errors/ecode"
	"buyback/pkg/kafka"
	"buyback/pkg/logger"
	"github.com/bwmarrin/snowflake"
)

var _ OrderService = (*orderService)(nil)

// OrderService 卖单生命周期：创建 -> 改量（只增）-> 取消。
// 成交由外部结算引擎回报，这里只观察不主动改。
type OrderService interface {
	OrderGetActiveSell(ctx context.Context, userAddress, offerAsset string) ([]model.Order, error)
	OrderCreateNew(ctx context.Context, req model.OrderCreateReq) (model.Order, error)
	OrderUpdateAmount(ctx context.Context, req model.OrderUpdateReq) (model.Order, error)
	OrderCancel(ctx context.Context, req model.OrderCancelReq) (bool, error)
	OrderQuote(ctx context.Context, req model.OrderQuoteReq) (model.OrderQuoteRes, error)
	ApplyFill(ctx context.Context, report model.OrderFillReport) error
}

type orderService struct {
	d        *dao.OrderDao
	assets   *dao.AssetDao
	market   MarketService
	node     *snowflake.Node
	producer kafka.ProducerService // 可以为nil，此时不发事件
}

func NewOrderService(d *dao.OrderDao, assets *dao.AssetDao, market MarketService, producer kafka.ProducerService) *orderService {
	// 单实例部署，节点id固定
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return &orderService{d: d, assets: assets, market: market, node: node, producer: producer}
}

func (s *orderService) toOrderModel(ctx context.Context, e entity.Order) model.Order {
	o := model.Order{
		Id:             e.Id,
		IsActive:       e.IsActive,
		UserAddress:    e.UserAddress,
		BasePrice:      e.BasePrice,
		Price:          e.Price,
		DisplayedPrice: e.DisplayedPrice,
		Amount:         e.Amount,
		FilledAmount:   e.FilledAmount,
	}
	// 资产快照查不到也不要让整单失败，留空给前端兜底
	if buyer, err := s.assets.AssetGetByAddress(ctx, e.BuyerAssetAddress); err == nil {
		o.BuyerAsset = toAssetModel(buyer)
	} else {
		o.BuyerAsset = model.Asset{Address: e.BuyerAssetAddress}
	}
	if offer, err := s.assets.AssetGetByAddress(ctx, e.OfferAssetAddress); err == nil {
		o.OfferAsset = toAssetModel(offer)
	} else {
		o.OfferAsset = model.Asset{Address: e.OfferAssetAddress}
	}
	return o
}

func (s *orderService) OrderGetActiveSell(ctx context.Context, userAddress, offerAsset string) ([]model.Order, error) {
	list, err := s.d.OrderGetActiveSell(ctx, userAddress, offerAsset)
	if err != nil {
		return nil, errors.Wrap(err, ecode.DbErr, "query active sell orders")
	}
	res := make([]model.Order, 0, len(list))
	for _, e := range list {
		res = append(res, s.toOrderModel(ctx, e))
	}
	return res, nil
}

// quoter 组装一次报价上下文，任何一块数据缺了就保持nil，
// 让报价引擎输出零值结果
func (s *orderService) quoter(ctx context.Context, offerAsset, stablecoin string) pricing.Quoter {
	var q pricing.Quoter
	if token, err := s.assets.AssetGetByAddress(ctx, offerAsset); err == nil {
		m := toAssetModel(token)
		q.Token = &m
	}
	if q.Token != nil {
		if tp, err := s.market.TokenPricesGet(ctx, offerAsset); err == nil {
			q.Prices = &tp
		}
	}
	if stablecoin != "" {
		if sc, err := s.assets.AssetGetByAddress(ctx, stablecoin); err == nil {
			m := toAssetModel(sc)
			q.Stablecoin = &m
			if usd, err := s.market.LatestPriceGet(ctx, stablecoin); err == nil {
				q.StablecoinUSD = &usd
			}
		}
	}
	return q
}

func (s *orderService) OrderCreateNew(ctx context.Context, req model.OrderCreateReq) (model.Order, error) {
	// 一个用户在一个token上只允许一张活跃卖单
	existing, err := s.d.OrderGetActiveSell(ctx, req.UserAddress, req.OfferAssetAddress)
	if err != nil {
		return model.Order{}, errors.Wrap(err, ecode.DbErr, "query existing orders")
	}
	for _, e := range existing {
		if e.IsActive {
			return model.Order{}, errors.WithCode(ecode.StateErr, "an active sell order already exists for this token")
		}
	}

	buyer, err := s.assets.AssetGetByAddress(ctx, req.BuyerAssetAddress)
	if err != nil {
		return model.Order{}, errors.WithCode(ecode.NotFoundErr, "buyer asset not found")
	}
	if !buyer.IsStableCoin {
		return model.Order{}, errors.WithCode(ecode.ValidateErr, "buyer asset must be a stablecoin")
	}
	if _, err := s.assets.AssetGetByAddress(ctx, req.OfferAssetAddress); err != nil {
		return model.Order{}, errors.WithCode(ecode.NotFoundErr, "offer asset not found")
	}

	base, unit, displayed := s.unitPrices(ctx, req.OfferAssetAddress, req.BuyerAssetAddress)

	e := entity.Order{
		Id:                s.node.Generate().Int64(),
		UserAddress:       req.UserAddress,
		BuyerAssetAddress: req.BuyerAssetAddress,
		OfferAssetAddress: req.OfferAssetAddress,
		BasePrice:         base,
		Price:             unit,
		DisplayedPrice:    displayed,
		Amount:            req.Amount,
		FilledAmount:      0,
		IsActive:          true,
	}
	if err := s.d.OrderCreate(ctx, &e); err != nil {
		return model.Order{}, errors.Wrap(err, ecode.DbErr, "create order")
	}

	s.publish(ctx, model.OrderEventCreated, e)
	return s.toOrderModel(ctx, e), nil
}

func (s *orderService) OrderUpdateAmount(ctx context.Context, req model.OrderUpdateReq) (model.Order, error) {
	list, err := s.d.OrderGetActiveSell(ctx, req.UserAddress, req.OfferAssetAddress)
	if err != nil {
		return model.Order{}, errors.Wrap(err, ecode.DbErr, "query order")
	}
	var current *entity.Order
	for i := range list {
		if list[i].IsActive {
			current = &list[i]
			break
		}
	}
	if current == nil {
		return model.Order{}, errors.WithCode(ecode.NotFoundErr, "no active sell order to update")
	}
	// 改单只能加量，且不能低于已成交部分
	if req.Amount <= current.Amount {
		return model.Order{}, errors.WithCode(ecode.ValidateErr, "amount can only be increased")
	}
	if req.Amount <= current.FilledAmount {
		return model.Order{}, errors.WithCode(ecode.ValidateErr, "amount must be above the filled amount")
	}

	if err := s.d.OrderUpdateAmount(ctx, current.Id, req.Amount); err != nil {
		return model.Order{}, errors.Wrap(err, ecode.DbErr, "update order")
	}
	current.Amount = req.Amount

	s.publish(ctx, model.OrderEventUpdated, *current)
	return s.toOrderModel(ctx, *current), nil
}

func (s *orderService) OrderCancel(ctx context.Context, req model.OrderCancelReq) (bool, error) {
	list, err := s.d.OrderGetActiveSell(ctx, req.UserAddress, req.OfferAssetAddress)
	if err != nil {
		return false, errors.Wrap(err, ecode.DbErr, "query order")
	}
	if len(list) == 0 {
		return false, errors.WithCode(ecode.NotFoundErr, "no sell order to cancel")
	}
	e := list[0]
	if err := s.d.OrderCancel(ctx, e.Id); err != nil {
		return false, errors.Wrap(err, ecode.DbErr, "cancel order")
	}

	s.publish(ctx, model.OrderEventCancelled, e)
	return true, nil
}

// OrderQuote 下单前的报价：费用拆分+毛/净金额。
// 数据没就绪返回全零，不算错误。
func (s *orderService) OrderQuote(ctx context.Context, req model.OrderQuoteReq) (model.OrderQuoteRes, error) {
	var res model.OrderQuoteRes
	if !pricing.ValidAmount(req.Amount) {
		return res, errors.WithCode(ecode.ValidateErr, "amount must be a non-negative decimal")
	}

	q := s.quoter(ctx, req.OfferAsset, req.Stablecoin)

	fees := q.Fees(req.Amount, consts.UsdDecimals, nil)
	res.Fees.VacancyFee = fees.VacancyFee.String()
	res.Fees.LiquidityProviderFee = fees.LiquidityProviderFee.String()
	res.Fees.PlatformFee = fees.PlatformFee.String()
	res.Fees.Decimals = fees.Decimals

	sent := q.SentAmountUSD(req.Amount)
	res.SentAmountUSD = model.ScaledAmountRes{Price: sent.Price.String(), Decimals: sent.Decimals}
	received := q.ReceivedAmountUSD(req.Amount)
	res.ReceivedAmountUSD = model.ScaledAmountRes{Price: received.Price.String(), Decimals: received.Decimals}
	stable := q.ReceivedAmountStablecoin(req.Amount)
	res.ReceivedAmountStable = model.ScaledAmountRes{Price: stable.Price.String(), Decimals: stable.Decimals}
	return res, nil
}

// ApplyFill 结算引擎的成交回报。filledAmount是累计值，只能往上走，
// 打满后订单转为非活跃。
func (s *orderService) ApplyFill(ctx context.Context, report model.OrderFillReport) error {
	e, err := s.d.OrderGetById(ctx, report.OrderId)
	if err != nil {
		return errors.WithCode(ecode.NotFoundErr, "order %d not found", report.OrderId)
	}
	if report.FilledAmount < e.FilledAmount || report.FilledAmount > e.Amount {
		return errors.WithCode(ecode.StateErr, "fill report out of range: %f", report.FilledAmount)
	}
	stillActive := report.FilledAmount < e.Amount
	if err := s.d.OrderRecordFill(ctx, e.Id, report.FilledAmount, stillActive); err != nil {
		return errors.Wrap(err, ecode.DbErr, "record fill")
	}
	return nil
}

// unitPrices 计算单位token的三个价格：基本面价、净美元价、
// 换算成买方稳定币的展示价
func (s *orderService) unitPrices(ctx context.Context, offerAsset, stablecoin string) (base, unit, displayed float64) {
	q := s.quoter(ctx, offerAsset, stablecoin)
	if q.Prices == nil {
		return 0, 0, 0
	}
	base = q.Prices.FundamentalPrice

	fees := q.Fees("1", consts.UsdDecimals, nil)
	net := pricing.ToScaledInteger(base, consts.UsdDecimals)
	net.Sub(net, fees.VacancyFee)
	net.Sub(net, fees.LiquidityProviderFee)
	net.Sub(net, fees.PlatformFee)
	unit = scaledToFloat(net, consts.UsdDecimals)

	if q.StablecoinUSD != nil {
		rate := pricing.ToScaledInteger(*q.StablecoinUSD, consts.CrossRateDecimals)
		d := new(big.Int).Mul(net, rate)
		displayed = scaledToFloat(d, consts.UsdDecimals+consts.CrossRateDecimals)
	}
	return base, unit, displayed
}

func scaledToFloat(v *big.Int, decimals int32) float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(v), new(big.Float).SetInt(pricing.Pow10(decimals))).Float64()
	return f
}

func (s *orderService) publish(ctx context.Context, t model.OrderEventType, e entity.Order) {
	if s.producer == nil {
		return
	}
	ev := model.OrderEvent{
		Type:              t,
		OrderId:           e.Id,
		UserAddress:       e.UserAddress,
		BuyerAssetAddress: e.BuyerAssetAddress,
		OfferAssetAddress: e.OfferAssetAddress,
		Amount:            e.Amount,
		Timestamp:         time.Now(),
	}
	// 事件发布失败不影响主流程，记日志等补偿
	if err := s.producer.Produce(ctx, []byte(e.OfferAssetAddress), ev); err != nil {
		logger.Errorf("publish order event %s for %d: %v", t, e.Id, err)
	}
}
