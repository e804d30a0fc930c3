package gateway

import (
	"areaadmin/internal/gateway/master"
	"areaadmin/pkg/client"
)

type IClient interface {
	Area() master.AreaSrv
}

// NewClient binds t to the area endpoint, e.g. http://127.0.0.1:8000/master/api/area/
func NewClient(t client.Transport, endpoint string) IClient {
	return &baseClient{client.NewResource(t).AddEndpoint(endpoint)}
}

type baseClient struct {
	client.IRequest
}

func (c baseClient) Area() master.AreaSrv {
	return master.AreaClient{IRequest: c.IRequest}
}
