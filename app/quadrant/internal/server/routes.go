package server

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/service"
)

const (
	OperationListDates   = "/quadrant.v1.Quadrant/ListDates"
	OperationGetQuadrant = "/quadrant.v1.Quadrant/GetQuadrant"
	OperationGetChart    = "/quadrant.v1.Quadrant/GetChart"
	OperationGetInsight  = "/quadrant.v1.Quadrant/GetInsight"
)

// RegisterQuadrantHTTPServer 注册看板的 JSON 与图片接口
func RegisterQuadrantHTTPServer(srv *http.Server, s *service.QuadrantService) {
	r := srv.Route("/")
	r.GET("/api/v1/dates", listDatesHandler(s))
	r.GET("/api/v1/quadrant", getQuadrantHandler(s))
	r.GET("/api/v1/quadrant/chart.png", getChartHandler(s))
	r.GET("/api/v1/quadrant/insight", getInsightHandler(s))
}

func listDatesHandler(s *service.QuadrantService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.ListDatesReq
		http.SetOperation(ctx, OperationListDates)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.ListDates(ctx, req.(*service.ListDatesReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.ListDatesReply))
	}
}

func getQuadrantHandler(s *service.QuadrantService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.QuadrantReq
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetQuadrant)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetQuadrant(ctx, req.(*service.QuadrantReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.QuadrantReply))
	}
}

func getChartHandler(s *service.QuadrantService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.QuadrantReq
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetChart)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetChart(ctx, req.(*service.QuadrantReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		ctx.Response().Header().Set("Cache-Control", "no-store")
		return ctx.Blob(200, "image/png", out.([]byte))
	}
}

func getInsightHandler(s *service.QuadrantService) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in service.QuadrantReq
		if err := ctx.BindQuery(&in); err != nil {
			return err
		}
		http.SetOperation(ctx, OperationGetInsight)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return s.GetInsight(ctx, req.(*service.QuadrantReq))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.Result(200, out.(*service.InsightReply))
	}
}
