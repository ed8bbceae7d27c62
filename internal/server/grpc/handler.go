package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	pb "github.com/dmitrijs2005/cellarkeeper/internal/proto"
	"github.com/dmitrijs2005/cellarkeeper/internal/rpc"
)

// toStatus maps store errors onto gRPC codes. The client maps them back.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrLocationTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func requireID(id string) error {
	if id == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	return nil
}

func (s *GRPCServer) CreateCabinet(ctx context.Context, req *pb.CreateCabinetRequest) (*pb.CreateCabinetResponse, error) {
	if req.GetCabinet() == nil {
		return nil, status.Error(codes.InvalidArgument, "cabinet is required")
	}
	c := rpc.CabinetFromProto(req.GetCabinet())
	c.ID = ""

	created, err := s.store.CreateCabinet(ctx, c)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "cabinet created", "id", created.ID, "owner", created.OwnerID)
	return &pb.CreateCabinetResponse{Cabinet: rpc.CabinetToProto(created)}, nil
}

func (s *GRPCServer) UpdateCabinet(ctx context.Context, req *pb.UpdateCabinetRequest) (*pb.UpdateCabinetResponse, error) {
	if err := requireID(req.GetId()); err != nil {
		return nil, err
	}
	if err := s.store.UpdateCabinet(ctx, req.GetId(), rpc.CabinetPatchFromProto(req.GetPatch())); err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateCabinetResponse{}, nil
}

func (s *GRPCServer) GetCabinet(ctx context.Context, req *pb.GetCabinetRequest) (*pb.GetCabinetResponse, error) {
	if err := requireID(req.GetId()); err != nil {
		return nil, err
	}
	c, err := s.store.GetCabinet(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetCabinetResponse{Cabinet: rpc.CabinetToProto(c)}, nil
}

func (s *GRPCServer) ListCabinets(ctx context.Context, req *pb.ListCabinetsRequest) (*pb.ListCabinetsResponse, error) {
	list, err := s.store.ListCabinets(ctx, req.GetOwnerId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListCabinetsResponse{Cabinets: rpc.CabinetsToProto(list)}, nil
}

func (s *GRPCServer) ListRoomRacks(ctx context.Context, req *pb.ListRoomRacksRequest) (*pb.ListRoomRacksResponse, error) {
	if err := requireID(req.GetRoomId()); err != nil {
		return nil, err
	}
	list, err := s.store.ListRoomRacks(ctx, req.GetRoomId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListRoomRacksResponse{Racks: rpc.CabinetsToProto(list)}, nil
}

func (s *GRPCServer) CreateBottle(ctx context.Context, req *pb.CreateBottleRequest) (*pb.CreateBottleResponse, error) {
	if req.GetBottle() == nil {
		return nil, status.Error(codes.InvalidArgument, "bottle is required")
	}
	b := rpc.BottleFromProto(req.GetBottle())
	b.ID = ""

	created, err := s.store.CreateBottle(ctx, b)
	if err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info(ctx, "bottle created", "id", created.ID, "cabinet", created.CabinetID)
	return &pb.CreateBottleResponse{Bottle: rpc.BottleToProto(created)}, nil
}

func (s *GRPCServer) UpdateBottle(ctx context.Context, req *pb.UpdateBottleRequest) (*pb.UpdateBottleResponse, error) {
	if err := requireID(req.GetId()); err != nil {
		return nil, err
	}
	if err := s.store.UpdateBottle(ctx, req.GetId(), rpc.BottlePatchFromProto(req.GetPatch())); err != nil {
		return nil, toStatus(err)
	}
	return &pb.UpdateBottleResponse{}, nil
}

func (s *GRPCServer) GetBottle(ctx context.Context, req *pb.GetBottleRequest) (*pb.GetBottleResponse, error) {
	if err := requireID(req.GetId()); err != nil {
		return nil, err
	}
	b, err := s.store.GetBottle(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetBottleResponse{Bottle: rpc.BottleToProto(b)}, nil
}

func (s *GRPCServer) ListBottles(ctx context.Context, req *pb.ListBottlesRequest) (*pb.ListBottlesResponse, error) {
	if err := requireID(req.GetCabinetId()); err != nil {
		return nil, err
	}
	list, err := s.store.ListBottles(ctx, req.GetCabinetId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListBottlesResponse{Bottles: rpc.BottlesToProto(list)}, nil
}

func (s *GRPCServer) ListHistory(ctx context.Context, req *pb.ListHistoryRequest) (*pb.ListHistoryResponse, error) {
	list, err := s.store.ListHistory(ctx, req.GetOwnerId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListHistoryResponse{Bottles: rpc.BottlesToProto(list)}, nil
}

func (s *GRPCServer) LabelUploadURL(ctx context.Context, req *pb.LabelUploadURLRequest) (*pb.LabelUploadURLResponse, error) {
	if err := requireID(req.GetBottleId()); err != nil {
		return nil, err
	}
	if s.labels == nil {
		return nil, status.Error(codes.Unavailable, "label storage is not configured")
	}
	key, url, err := s.labels.UploadURL(ctx, req.GetBottleId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.LabelUploadURLResponse{Key: key, Url: url}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	if err := s.store.Ping(ctx); err != nil {
		s.logger.Error(ctx, "store ping failed", "error", err)
		return nil, status.Error(codes.Unavailable, "store unavailable")
	}
	return &pb.PingResponse{Status: "OK"}, nil
}
