package model

import (
	"areaadmin/pkg/json"
)

// Status 区域使用状态
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var Statuses = []Status{StatusDraft, StatusActive, StatusInactive}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Timestamp server assigned time record
type Timestamp struct {
	Date         string `json:"date"`
	Datetime     string `json:"datetime"`
	DatetimeZone string `json:"datetimezone"`
	Time         string `json:"time"`
	UTC          string `json:"utc"`
	Zone         string `json:"zone"`
}

// Area 区域信息
type Area struct {
	// 路由主键，编辑删除只认它
	Base64PK string `json:"base64pk"`
	// 区域编号，创建后不可修改
	AreaID   string `json:"area_id"`
	AreaName string `json:"area_name"`
	Status   Status `json:"status"`
	Enable   bool   `json:"enable"`
	// 软删除标记，由服务端维护
	IsRemoved   bool            `json:"is_removed"`
	Description string          `json:"description"`
	Properties  json.RawMessage `json:"properties,omitempty"`
	Created     Timestamp       `json:"created"`
	Modified    Timestamp       `json:"modified"`
}

// FormData the editable part of a
func (a *Area) FormData() *AreaFormData {
	return &AreaFormData{
		AreaID:      a.AreaID,
		AreaName:    a.AreaName,
		Status:      a.Status,
		Enable:      a.Enable,
		Description: a.Description,
	}
}

// AreaList list envelope
type AreaList struct {
	TotalCount int     `json:"totalCount"`
	Data       []*Area `json:"data"`
}

// AreaFormData values collected by the form
type AreaFormData struct {
	AreaID   string `json:"area_id" binding:"required,max=20"`
	AreaName string `json:"area_name" binding:"required,max=100"`
	Status   Status `json:"status" binding:"required,oneof=draft active inactive"`
	Enable   bool   `json:"enable"`
	// string or any structured value
	Description interface{} `json:"description"`
}

// NewAreaFormData create mode defaults
func NewAreaFormData() *AreaFormData {
	return &AreaFormData{Status: StatusDraft, Enable: true}
}

// Clone copies the form values, a structured description is shared
func (f *AreaFormData) Clone() *AreaFormData {
	c := *f
	return &c
}

// AreaPayload request body of create and update
type AreaPayload struct {
	AreaID      string `json:"area_id"`
	AreaName    string `json:"area_name"`
	Status      Status `json:"status"`
	Enable      bool   `json:"enable"`
	Description string `json:"description"`
}

// Payload normalizes the description to its wire string
func (f *AreaFormData) Payload() (*AreaPayload, error) {
	description, err := json.Stringify(f.Description)
	if err != nil {
		return nil, err
	}
	return &AreaPayload{
		AreaID:      f.AreaID,
		AreaName:    f.AreaName,
		Status:      f.Status,
		Enable:      f.Enable,
		Description: description,
	}, nil
}
