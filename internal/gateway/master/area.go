package master

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"areaadmin/internal/model"
	"areaadmin/pkg/client"
	"areaadmin/pkg/code"
	"areaadmin/pkg/logger"
)

type AreaSrv interface {
	// List 分页查询区域列表，filters 作为顶层参数
	List(ctx context.Context, state model.TableState) (*model.AreaList, error)
	// Get 查询单个区域，id 为 base64pk
	Get(ctx context.Context, id string) (*model.Area, error)
	Create(ctx context.Context, data *model.AreaFormData) (*model.Area, error)
	// Update 全量替换
	Update(ctx context.Context, id string, data *model.AreaFormData) (*model.Area, error)
	Delete(ctx context.Context, id string) error
}

type AreaClient struct {
	client.IRequest
}

func (a AreaClient) List(ctx context.Context, state model.TableState) (*model.AreaList, error) {
	var result model.AreaList
	if err := a.To().
		Method(http.MethodGet).
		Params(state.Params()).
		Do(ctx, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		result.Data = []*model.Area{}
	}
	return &result, nil
}

func (a AreaClient) Get(ctx context.Context, id string) (*model.Area, error) {
	var result model.Area
	if err := a.To().
		Method(http.MethodGet).
		Name(id).
		Do(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a AreaClient) Create(ctx context.Context, data *model.AreaFormData) (*model.Area, error) {
	payload, err := payloadOf(ctx, data)
	if err != nil {
		return nil, err
	}
	var result model.Area
	if err = a.To().
		Method(http.MethodPost).
		Body(payload).
		Do(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a AreaClient) Update(ctx context.Context, id string, data *model.AreaFormData) (*model.Area, error) {
	payload, err := payloadOf(ctx, data)
	if err != nil {
		return nil, err
	}
	var result model.Area
	if err = a.To().
		Method(http.MethodPut).
		Name(id).
		Body(payload).
		Do(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (a AreaClient) Delete(ctx context.Context, id string) error {
	return a.To().
		Method(http.MethodDelete).
		Name(id).
		DoNop(ctx)
}

func payloadOf(ctx context.Context, data *model.AreaFormData) (*model.AreaPayload, error) {
	payload, err := data.Payload()
	if err != nil {
		logger.From(ctx).Error("encode area description failed", zap.Error(err))
		return nil, errors.WithStack(code.Unexpected(err))
	}
	return payload, nil
}
