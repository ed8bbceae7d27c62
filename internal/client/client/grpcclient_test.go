package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	pb "github.com/dmitrijs2005/cellarkeeper/internal/proto"
	"github.com/dmitrijs2005/cellarkeeper/internal/rpc"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake rpc client
 *************/

type fakeRPC struct {
	pb.CellarClient

	lastCabinet     *pb.Cabinet
	lastBottle      *pb.Bottle
	lastID          string
	lastBottlePatch *pb.BottlePatch

	cabinet  *pb.Cabinet
	bottles  []*pb.Bottle
	cabinets []*pb.Cabinet
	label    *pb.LabelUploadURLResponse
	err      error
}

func (f *fakeRPC) CreateCabinet(ctx context.Context, in *pb.CreateCabinetRequest, opts ...grpc.CallOption) (*pb.CreateCabinetResponse, error) {
	f.lastCabinet = in.GetCabinet()
	return &pb.CreateCabinetResponse{Cabinet: f.cabinet}, f.err
}
func (f *fakeRPC) UpdateCabinet(ctx context.Context, in *pb.UpdateCabinetRequest, opts ...grpc.CallOption) (*pb.UpdateCabinetResponse, error) {
	f.lastID = in.GetId()
	return &pb.UpdateCabinetResponse{}, f.err
}
func (f *fakeRPC) GetCabinet(ctx context.Context, in *pb.GetCabinetRequest, opts ...grpc.CallOption) (*pb.GetCabinetResponse, error) {
	f.lastID = in.GetId()
	return &pb.GetCabinetResponse{Cabinet: f.cabinet}, f.err
}
func (f *fakeRPC) ListCabinets(ctx context.Context, in *pb.ListCabinetsRequest, opts ...grpc.CallOption) (*pb.ListCabinetsResponse, error) {
	f.lastID = in.GetOwnerId()
	return &pb.ListCabinetsResponse{Cabinets: f.cabinets}, f.err
}
func (f *fakeRPC) CreateBottle(ctx context.Context, in *pb.CreateBottleRequest, opts ...grpc.CallOption) (*pb.CreateBottleResponse, error) {
	f.lastBottle = in.GetBottle()
	return &pb.CreateBottleResponse{Bottle: in.GetBottle()}, f.err
}
func (f *fakeRPC) UpdateBottle(ctx context.Context, in *pb.UpdateBottleRequest, opts ...grpc.CallOption) (*pb.UpdateBottleResponse, error) {
	f.lastID = in.GetId()
	f.lastBottlePatch = in.GetPatch()
	return &pb.UpdateBottleResponse{}, f.err
}
func (f *fakeRPC) ListHistory(ctx context.Context, in *pb.ListHistoryRequest, opts ...grpc.CallOption) (*pb.ListHistoryResponse, error) {
	f.lastID = in.GetOwnerId()
	return &pb.ListHistoryResponse{Bottles: f.bottles}, f.err
}
func (f *fakeRPC) LabelUploadURL(ctx context.Context, in *pb.LabelUploadURLRequest, opts ...grpc.CallOption) (*pb.LabelUploadURLResponse, error) {
	f.lastID = in.GetBottleId()
	return f.label, f.err
}
func (f *fakeRPC) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, f.err
}

/*************
 * clientIDInterceptor tests
 *************/

func TestInterceptor_AddsClientID(t *testing.T) {
	c := &GRPCClient{clientID: "install-1"}

	ctx := metadata.AppendToOutgoingContext(context.Background(), "other", "kept")
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"install-1"}, md.Get(rpc.ClientIDHeader))
		require.Equal(t, []string{"kept"}, md.Get("other"))
		return nil
	}
	require.NoError(t, c.clientIDInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoClientID(t *testing.T) {
	c := &GRPCClient{}
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(rpc.ClientIDHeader))
		return status.Error(codes.Internal, "boom")
	}
	require.Error(t, c.clientIDInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.NoError(t, c.mapError(nil))
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x")), common.ErrNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.InvalidArgument, "x")), common.ErrInvalidArgument)
	require.ErrorIs(t, c.mapError(status.Error(codes.FailedPrecondition, "x")), common.ErrInvalidTransition)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x")), common.ErrLocationTaken)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), common.ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), common.ErrUnavailable)
	require.ErrorContains(t, c.mapError(status.Error(codes.NotFound, "bottle b1")), "bottle b1")

	internal := c.mapError(status.Error(codes.Internal, "x"))
	require.ErrorContains(t, internal, "rpc error:")
	require.False(t, common.IsValidation(internal))

	require.ErrorContains(t, c.mapError(errors.New("plain")), "rpc error:")
}

/*************
 * Store method tests
 *************/

func TestPing_MapsRPCError(t *testing.T) {
	require.NoError(t, (&GRPCClient{client: &fakeRPC{}}).Ping(context.Background()))

	f := &fakeRPC{err: status.Error(codes.Unavailable, "down")}
	require.ErrorIs(t, (&GRPCClient{client: f}).Ping(context.Background()), common.ErrUnavailable)
}

func TestCreateCabinet_RoundTrip(t *testing.T) {
	want := models.Cabinet{ID: "c1", OwnerID: "u1", Name: "Hall", Type: models.CabinetTypeCabinet,
		Dimensions: models.Dimensions{Rows: 2, Columns: 3, Depth: 1}}
	f := &fakeRPC{cabinet: rpc.CabinetToProto(want)}
	c := &GRPCClient{client: f}

	got, err := c.CreateCabinet(context.Background(), models.Cabinet{OwnerID: "u1", Name: "Hall"})
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, "Hall", f.lastCabinet.GetName())
}

func TestCreateBottle_SendsTypedFields(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f}

	added := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	in := models.Bottle{OwnerID: "u1", CabinetID: "c1", Location: models.Location{Row: 3, Col: 1, DepthIndex: 1},
		Details: models.Details{Name: "Rioja", Type: models.WineTypeRed}, Status: models.StatusStored, AddedAt: added}

	got, err := c.CreateBottle(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, in, got)
	require.Equal(t, int32(3), f.lastBottle.GetLocation().GetRow())
	require.Equal(t, added, f.lastBottle.GetAddedAt().AsTime())
}

func TestUpdateBottle_SendsIDAndPatch(t *testing.T) {
	f := &fakeRPC{}
	c := &GRPCClient{client: f}

	notes := "corked"
	require.NoError(t, c.UpdateBottle(context.Background(), "b1", models.BottlePatch{Notes: &notes}))

	require.Equal(t, "b1", f.lastID)
	require.Equal(t, models.BottlePatch{Notes: &notes}, rpc.BottlePatchFromProto(f.lastBottlePatch))
}

func TestUpdateCabinet_MapsError(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.InvalidArgument, "bad dims")}
	name := "x"
	err := (&GRPCClient{client: f}).UpdateCabinet(context.Background(), "c1", models.CabinetPatch{Name: &name})
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	require.Equal(t, "c1", f.lastID)
}

func TestGetCabinet_NotFound(t *testing.T) {
	f := &fakeRPC{err: status.Error(codes.NotFound, "cabinet c9")}
	_, err := (&GRPCClient{client: f}).GetCabinet(context.Background(), "c9")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Equal(t, "c9", f.lastID)
}

func TestListHistory_Decodes(t *testing.T) {
	rating := 7
	f := &fakeRPC{bottles: rpc.BottlesToProto([]models.Bottle{{ID: "b1", Status: models.StatusConsumed, Rating: &rating}})}

	got, err := (&GRPCClient{client: f}).ListHistory(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b1", got[0].ID)
	require.Equal(t, 7, *got[0].Rating)
	require.Equal(t, "u1", f.lastID)
}

func TestListCabinets_EmptyIsNotNil(t *testing.T) {
	f := &fakeRPC{}
	got, err := (&GRPCClient{client: f}).ListCabinets(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLabelUploadURL(t *testing.T) {
	f := &fakeRPC{label: &pb.LabelUploadURLResponse{Key: "labels/b1.jpg", Url: "https://s3/put"}}
	key, url, err := (&GRPCClient{client: f}).LabelUploadURL(context.Background(), "b1")
	require.NoError(t, err)
	require.Equal(t, "labels/b1.jpg", key)
	require.Equal(t, "https://s3/put", url)
	require.Equal(t, "b1", f.lastID)

	f.label = &pb.LabelUploadURLResponse{Key: "k"}
	_, _, err = (&GRPCClient{client: f}).LabelUploadURL(context.Background(), "b1")
	require.Error(t, err)
}
