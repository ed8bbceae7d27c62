package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	pb "github.com/dmitrijs2005/cellarkeeper/internal/proto"
	"github.com/dmitrijs2005/cellarkeeper/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	clientID    string
	conn        *grpc.ClientConn
	client      pb.CellarClient
}

var _ Client = (*GRPCClient)(nil)

func withClientID(ctx context.Context, id string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(rpc.ClientIDHeader, id)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) clientIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.clientID != "" {
		ctx = withClientID(ctx, s.clientID)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewCellarClient dials the server lazily; the first call connects.
// clientID identifies this install in server logs and may be empty.
// Extra dial options are appended to the defaults.
func NewCellarClient(endpointURL, clientID string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, clientID: clientID}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.clientIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewCellarClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	return s.mapError(err)
}

func (s *GRPCClient) CreateCabinet(ctx context.Context, c models.Cabinet) (models.Cabinet, error) {
	resp, err := s.client.CreateCabinet(ctx, &pb.CreateCabinetRequest{Cabinet: rpc.CabinetToProto(c)})
	if err != nil {
		return models.Cabinet{}, s.mapError(err)
	}
	return rpc.CabinetFromProto(resp.GetCabinet()), nil
}

func (s *GRPCClient) UpdateCabinet(ctx context.Context, id string, p models.CabinetPatch) error {
	_, err := s.client.UpdateCabinet(ctx, &pb.UpdateCabinetRequest{Id: id, Patch: rpc.CabinetPatchToProto(p)})
	return s.mapError(err)
}

func (s *GRPCClient) GetCabinet(ctx context.Context, id string) (models.Cabinet, error) {
	resp, err := s.client.GetCabinet(ctx, &pb.GetCabinetRequest{Id: id})
	if err != nil {
		return models.Cabinet{}, s.mapError(err)
	}
	return rpc.CabinetFromProto(resp.GetCabinet()), nil
}

func (s *GRPCClient) ListCabinets(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	resp, err := s.client.ListCabinets(ctx, &pb.ListCabinetsRequest{OwnerId: ownerID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.CabinetsFromProto(resp.GetCabinets()), nil
}

func (s *GRPCClient) ListRoomRacks(ctx context.Context, roomID string) ([]models.Cabinet, error) {
	resp, err := s.client.ListRoomRacks(ctx, &pb.ListRoomRacksRequest{RoomId: roomID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.CabinetsFromProto(resp.GetRacks()), nil
}

func (s *GRPCClient) CreateBottle(ctx context.Context, b models.Bottle) (models.Bottle, error) {
	resp, err := s.client.CreateBottle(ctx, &pb.CreateBottleRequest{Bottle: rpc.BottleToProto(b)})
	if err != nil {
		return models.Bottle{}, s.mapError(err)
	}
	return rpc.BottleFromProto(resp.GetBottle()), nil
}

func (s *GRPCClient) UpdateBottle(ctx context.Context, id string, p models.BottlePatch) error {
	_, err := s.client.UpdateBottle(ctx, &pb.UpdateBottleRequest{Id: id, Patch: rpc.BottlePatchToProto(p)})
	return s.mapError(err)
}

func (s *GRPCClient) GetBottle(ctx context.Context, id string) (models.Bottle, error) {
	resp, err := s.client.GetBottle(ctx, &pb.GetBottleRequest{Id: id})
	if err != nil {
		return models.Bottle{}, s.mapError(err)
	}
	return rpc.BottleFromProto(resp.GetBottle()), nil
}

func (s *GRPCClient) ListBottles(ctx context.Context, cabinetID string) ([]models.Bottle, error) {
	resp, err := s.client.ListBottles(ctx, &pb.ListBottlesRequest{CabinetId: cabinetID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.BottlesFromProto(resp.GetBottles()), nil
}

func (s *GRPCClient) ListHistory(ctx context.Context, ownerID string) ([]models.Bottle, error) {
	resp, err := s.client.ListHistory(ctx, &pb.ListHistoryRequest{OwnerId: ownerID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.BottlesFromProto(resp.GetBottles()), nil
}

func (s *GRPCClient) LabelUploadURL(ctx context.Context, bottleID string) (string, string, error) {
	resp, err := s.client.LabelUploadURL(ctx, &pb.LabelUploadURLRequest{BottleId: bottleID})
	if err != nil {
		return "", "", s.mapError(err)
	}
	if resp.GetUrl() == "" {
		return "", "", errors.New("server returned an empty upload url")
	}
	return resp.GetKey(), resp.GetUrl(), nil
}

// mapError turns a status error into the matching common sentinel, keeping
// the server message.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	var sentinel error
	switch st.Code() {
	case codes.NotFound:
		sentinel = common.ErrNotFound
	case codes.InvalidArgument:
		sentinel = common.ErrInvalidArgument
	case codes.FailedPrecondition:
		sentinel = common.ErrInvalidTransition
	case codes.AlreadyExists:
		sentinel = common.ErrLocationTaken
	case codes.Unavailable, codes.DeadlineExceeded:
		sentinel = common.ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}
