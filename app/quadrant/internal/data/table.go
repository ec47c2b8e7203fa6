package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/biz"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

type tableRepo struct {
	data *Data
	log  *log.Helper
}

// NewTableRepo 基于缓存的指标数据仓库
func NewTableRepo(data *Data, logger log.Logger) biz.TableRepo {
	return &tableRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *tableRepo) Table(ctx context.Context) (*domain.Table, error) {
	t, err := r.data.Table()
	if err != nil {
		r.log.WithContext(ctx).Errorf("读取数据时出错：%v", err)
		return nil, err
	}
	return t, nil
}
