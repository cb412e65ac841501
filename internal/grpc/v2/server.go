package v2

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/nryeo/QRCODE-APP01/internal/model"
	"github.com/nryeo/QRCODE-APP01/internal/qr"
	"github.com/nryeo/QRCODE-APP01/internal/shortener"
)

// Service is the subset of service.QRService exposed over gRPC.
type Service interface {
	Generate(req model.EncodeRequest) ([]byte, *qr.Code, error)
	Shorten(ctx context.Context, url string) (string, error)
}

type GRPCServer struct {
	Service  Service
	Defaults model.Style
}

func NewGRPCServer(svc Service, defaults model.Style) *GRPCServer {
	return &GRPCServer{Service: svc, Defaults: defaults}
}

// Generate принимает Struct с полями text, fill_color, back_color,
// module_size, border_width и возвращает PNG.
func (s *GRPCServer) Generate(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error) {
	fields := req.GetFields()
	text := fields["text"].GetStringValue()
	if strings.TrimSpace(text) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is empty")
	}

	style := model.Style{
		FillColor: fields["fill_color"].GetStringValue(),
		BackColor: fields["back_color"].GetStringValue(),
	}
	var err error
	if style.ModuleSize, err = intField(fields, "module_size"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if style.BorderWidth, err = intField(fields, "border_width"); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	data, _, err := s.Service.Generate(model.EncodeRequest{Payload: text, Style: style.WithDefaults(s.Defaults)})
	switch {
	case errors.Is(err, qr.ErrInvalidInput):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, qr.ErrEncoding):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	case err != nil:
		return nil, status.Errorf(codes.Internal, "generate: %v", err)
	}
	return wrapperspb.Bytes(data), nil
}

func (s *GRPCServer) Shorten(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "URL is empty")
	}

	short, err := s.Service.Shorten(ctx, req.GetValue())
	switch {
	case errors.Is(err, shortener.ErrInvalidURL):
		return nil, status.Error(codes.InvalidArgument, "invalid URL")
	case errors.Is(err, shortener.ErrShortenerDisabled):
		return nil, status.Error(codes.Unimplemented, err.Error())
	case err != nil:
		return nil, status.Errorf(codes.Unavailable, "shorten: %v", err)
	}
	return wrapperspb.String(short), nil
}

func intField(fields map[string]*structpb.Value, name string) (int, error) {
	v, ok := fields[name]
	if !ok {
		return 0, nil
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return int(n.NumberValue), nil
}
