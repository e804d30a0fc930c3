package code

import (
	"context"
	"errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOperation_Describe(t *testing.T) {
	type args struct {
		op  Operation
		err error
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "field_errors",
			args: args{
				op:  OpCreate,
				err: HTTP(http.StatusUnprocessableEntity, []byte(`{"area_name": ["too long"]}`)),
			},
			want: "Failed to create area: area_name: too long",
		},
		{
			name: "field_order_kept",
			args: args{
				op:  OpUpdate,
				err: HTTP(http.StatusBadRequest, []byte(`{"status":["bad","worse"],"area_id":"taken"}`)),
			},
			want: "Failed to update area: status: bad,worse, area_id: taken",
		},
		{
			name: "server_error_uses_status_text",
			args: args{
				op:  OpCreate,
				err: HTTP(http.StatusInternalServerError, []byte(`{"detail":"boom"}`)),
			},
			want: "Failed to create area: 500 Internal Server Error",
		},
		{
			name: "4xx_plain_body",
			args: args{
				op:  OpCreate,
				err: HTTP(http.StatusForbidden, []byte("CSRF verification failed")),
			},
			want: "Failed to create area: 403 Forbidden",
		},
		{
			name: "4xx_empty_object",
			args: args{
				op:  OpCreate,
				err: HTTP(http.StatusBadRequest, []byte(`{}`)),
			},
			want: "Failed to create area: 400 Bad Request",
		},
		{
			name: "transport",
			args: args{
				op:  OpUpdate,
				err: Transport(errors.New("dial tcp: connection refused")),
			},
			want: NetworkMessage,
		},
		{
			name: "unexpected",
			args: args{
				op:  OpUpdate,
				err: errors.New("json: unsupported value"),
			},
			want: "Error updating area: json: unsupported value",
		},
		{
			name: "wrapped",
			args: args{
				op:  OpCreate,
				err: pkgerrors.WithStack(HTTP(http.StatusNotFound, nil)),
			},
			want: "Failed to create area: 404 Not Found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.args.op.Describe(tt.args.err))
		})
	}
}

func TestError_Is(t *testing.T) {
	err := pkgerrors.WithStack(HTTP(http.StatusNotFound, []byte("missing")))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrHTTP))
	assert.False(t, errors.Is(err, ErrBadRequest))
	assert.False(t, errors.Is(err, ErrTransport))

	transport := Transport(context.DeadlineExceeded)
	assert.True(t, errors.Is(transport, ErrTransport))
	assert.True(t, errors.Is(transport, context.DeadlineExceeded))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("x")))
	assert.Equal(t, KindValidation, KindOf(Validation(map[string][]string{"area_id": {"required"}})))
	assert.Equal(t, KindHTTP, KindOf(pkgerrors.WithStack(HTTP(http.StatusConflict, nil))))
}

func TestFieldSummary(t *testing.T) {
	got := FieldSummary(map[string][]string{
		"area_name": {"Please enter area name"},
		"area_id":   {"Please enter area ID"},
	})
	assert.Equal(t, "area_id: Please enter area ID, area_name: Please enter area name", got)
}
