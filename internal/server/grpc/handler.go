package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/rpc"
	"github.com/dmitrijs2005/notto/internal/server/models"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	s.logger.Info(ctx, "Registration request")

	user, err := userFromProto(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if err := s.users.CreateAccount(ctx, user); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.CreateAccountResponse{Username: user.Username}, nil
}

func (s *GRPCServer) LoginChallenge(ctx context.Context, req *pb.LoginChallengeRequest) (*pb.LoginChallengeResponse, error) {
	cred, err := s.users.LoginChallenge(ctx, req.GetUsername(), req.GetRecovery())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginChallengeResponse{
		Params:     rpc.ParamsToProto(cred.Params),
		Salt:       cred.Salt,
		ServerSalt: cred.ServerSalt,
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	res, err := s.users.Login(ctx, req.GetUsername(), req.GetLoginHash(), req.GetRecovery())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{Key: rpc.KeyToProto(&res.Key), Token: res.Token}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.ChangePasswordResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	cred, err := credentialFromProto(req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	key, err := rpc.KeyFromProto(req.GetPasswordKey())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if err := s.users.ChangePassword(ctx, id, cred, key); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ChangePasswordResponse{}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *pb.ListNotesRequest) (*pb.ListNotesResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	notes, watermark, err := s.notes.Pull(ctx, id.UserID, req.GetSince())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Record, 0, len(notes))
	for _, n := range notes {
		out = append(out, recordFromNote(n))
	}
	return &pb.ListNotesResponse{Notes: out, Watermark: watermark}, nil
}

func (s *GRPCServer) PushNotes(ctx context.Context, req *pb.PushNotesRequest) (*pb.PushNotesResponse, error) {
	id, err := identityFrom(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*models.PushItem, 0, len(req.GetNotes()))
	for _, r := range req.GetNotes() {
		items = append(items, pushItemFromRecord(r))
	}

	results, watermark, err := s.notes.Push(ctx, id.UserID, items)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.PushResult, 0, len(results))
	for _, r := range results {
		out = append(out, pushResultToProto(r))
	}
	return &pb.PushNotesResponse{Results: out, Watermark: watermark}, nil
}
