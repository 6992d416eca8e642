package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	rebalancerv1 "github.com/simaogato/rebalancer-backend/internal/adapter/grpc/rebalancer/v1"
	"github.com/simaogato/rebalancer-backend/internal/domain"
	"github.com/simaogato/rebalancer-backend/internal/usecase/rebalance"
)

// Server implements the RebalancerService gRPC server
type Server struct {
	rebalancerv1.UnimplementedRebalancerServiceServer

	RebalanceService *rebalance.RebalanceService
}

// NewServer creates a new gRPC server instance
func NewServer(rebalanceService *rebalance.RebalanceService) *Server {
	return &Server{
		RebalanceService: rebalanceService,
	}
}

// Evaluate handles the Evaluate RPC
func (s *Server) Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	holdings, err := parseHoldings(fields["holdings"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid holdings: %v", err)
	}

	allocations, err := parseAllocations(fields["allocations"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid allocations: %v", err)
	}

	result, err := s.RebalanceService.Evaluate(ctx, rebalance.EvaluateInput{
		Holdings:    holdings,
		Allocations: allocations,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return resultToProto(result)
}

// RebalancePortfolio handles the RebalancePortfolio RPC
func (s *Server) RebalancePortfolio(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	portfolioID, err := parsePortfolioID(req)
	if err != nil {
		return nil, err
	}

	result, err := s.RebalanceService.RebalancePortfolio(ctx, portfolioID)
	if err != nil {
		return nil, mapError(err)
	}

	return resultToProto(result)
}

// GetTotalValue handles the GetTotalValue RPC
func (s *Server) GetTotalValue(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	portfolioID, err := parsePortfolioID(req)
	if err != nil {
		return nil, err
	}

	total, err := s.RebalanceService.TotalValue(ctx, portfolioID)
	if err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"portfolio_id": portfolioID.String(),
		"total_value":  total.String(),
	})
}

// UpdateShares handles the UpdateShares RPC
func (s *Server) UpdateShares(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	portfolioID, err := parsePortfolioID(req)
	if err != nil {
		return nil, err
	}

	fields := req.GetFields()
	symbol := fields["symbol"].GetStringValue()
	shares, err := parseDecimal(fields["shares"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid shares format: %v", err)
	}

	if err := s.RebalanceService.UpdateShares(ctx, portfolioID, symbol, shares); err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"portfolio_id": portfolioID.String(),
		"symbol":       symbol,
		"shares":       shares.String(),
	})
}

// UpsertHolding handles the UpsertHolding RPC
func (s *Server) UpsertHolding(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	portfolioID, err := parsePortfolioID(req)
	if err != nil {
		return nil, err
	}

	fields := req.GetFields()
	price, err := parseDecimal(fields["price"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid price format: %v", err)
	}

	holding := domain.NewHolding(fields["symbol"].GetStringValue(), price)
	if raw, ok := fields["shares"]; ok {
		shares, err := parseDecimal(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid shares format: %v", err)
		}
		holding.SetShares(shares)
	}

	if err := s.RebalanceService.UpsertHolding(ctx, portfolioID, holding); err != nil {
		return nil, mapError(err)
	}

	snap := holding.Snapshot()
	return newStruct(map[string]interface{}{
		"portfolio_id": portfolioID.String(),
		"symbol":       snap.Symbol,
		"price":        snap.Price.String(),
		"shares":       snap.Shares.String(),
	})
}

// SetAllocation handles the SetAllocation RPC
func (s *Server) SetAllocation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	portfolioID, err := parsePortfolioID(req)
	if err != nil {
		return nil, err
	}

	fields := req.GetFields()
	symbol := fields["symbol"].GetStringValue()
	fraction, err := parseDecimal(fields["fraction"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid fraction format: %v", err)
	}

	if err := s.RebalanceService.SetAllocation(ctx, portfolioID, symbol, fraction); err != nil {
		return nil, mapError(err)
	}

	return newStruct(map[string]interface{}{
		"portfolio_id": portfolioID.String(),
		"symbol":       symbol,
		"fraction":     fraction.String(),
	})
}

// parsePortfolioID reads the portfolio_id field
func parsePortfolioID(req *structpb.Struct) (uuid.UUID, error) {
	raw := req.GetFields()["portfolio_id"].GetStringValue()
	portfolioID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid portfolio_id format: %v", err)
	}
	return portfolioID, nil
}

// parseDecimal accepts decimal strings (preferred) and JSON numbers
func parseDecimal(v *structpb.Value) (decimal.Decimal, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return decimal.NewFromString(kind.StringValue)
	case *structpb.Value_NumberValue:
		if math.IsNaN(kind.NumberValue) || math.IsInf(kind.NumberValue, 0) {
			return decimal.Zero, fmt.Errorf("number %v is not finite", kind.NumberValue)
		}
		return decimal.NewFromFloat(kind.NumberValue), nil
	case nil:
		return decimal.Zero, errors.New("missing value")
	default:
		return decimal.Zero, fmt.Errorf("unsupported value type %T", kind)
	}
}

// parseHoldings reads a list of {symbol, price, shares} objects; shares defaults to zero
func parseHoldings(v *structpb.Value) ([]*domain.Holding, error) {
	list := v.GetListValue()
	if list == nil {
		if v == nil {
			return []*domain.Holding{}, nil
		}
		return nil, errors.New("holdings must be a list")
	}

	holdings := make([]*domain.Holding, 0, len(list.GetValues()))
	for i, item := range list.GetValues() {
		fields := item.GetStructValue().GetFields()
		if fields == nil {
			return nil, fmt.Errorf("holding %d must be an object", i)
		}

		price, err := parseDecimal(fields["price"])
		if err != nil {
			return nil, fmt.Errorf("holding %d price: %w", i, err)
		}

		holding := domain.NewHolding(fields["symbol"].GetStringValue(), price)
		if raw, ok := fields["shares"]; ok {
			shares, err := parseDecimal(raw)
			if err != nil {
				return nil, fmt.Errorf("holding %d shares: %w", i, err)
			}
			holding.SetShares(shares)
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}

// parseAllocations reads a {SYMBOL: fraction} object
func parseAllocations(v *structpb.Value) (domain.Allocations, error) {
	allocations := domain.Allocations{}
	if v == nil {
		return allocations, nil
	}

	obj := v.GetStructValue()
	if obj == nil {
		return nil, errors.New("allocations must be an object")
	}

	for symbol, raw := range obj.GetFields() {
		fraction, err := parseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("allocation %s: %w", symbol, err)
		}
		allocations[symbol] = fraction
	}

	return allocations, nil
}

// resultToProto converts a rebalance result; decisions keep their order as a list
func resultToProto(result *rebalance.Result) (*structpb.Struct, error) {
	decisions := make([]interface{}, 0, result.Decisions.Len())
	for _, d := range result.Decisions.All() {
		decisions = append(decisions, map[string]interface{}{
			"symbol":       d.Symbol,
			"sell":         d.Sell,
			"action":       string(d.Action()),
			"label":        d.Label(),
			"price":        d.Price.String(),
			"target_value": d.TargetValue.String(),
		})
	}

	out := map[string]interface{}{
		"total_value":  result.TotalValue.String(),
		"decisions":    decisions,
		"evaluated_at": result.EvaluatedAt.UTC().Format(time.RFC3339Nano),
	}
	if result.PortfolioID != uuid.Nil {
		out["portfolio_id"] = result.PortfolioID.String()
	}

	return newStruct(out)
}

func newStruct(m map[string]interface{}) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return st, nil
}

// mapError converts domain errors to gRPC status errors
// Anything not matched by a sentinel is Internal, including driver errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidSymbol), errors.Is(err, domain.ErrInvalidHolding):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrPortfolioNotFound), errors.Is(err, domain.ErrHoldingNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	default:
		return status.Errorf(codes.Internal, "%s", err.Error())
	}
}
