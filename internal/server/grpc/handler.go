package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/passvault/internal/proto"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toPBRecord(r *models.Record) *pb.Record {
	return &pb.Record{
		Id:        r.ID,
		Site:      r.Site,
		Username:  r.AccountUsername,
		Password:  r.Secret,
		Category:  r.Category,
		Notes:     r.Notes,
		CreatedAt: timestamppb.New(r.CreatedAt),
		UpdatedAt: timestamppb.New(r.UpdatedAt),
	}
}

func toPBRecords(rs []models.Record) []*pb.Record {
	out := make([]*pb.Record, 0, len(rs))
	for i := range rs {
		out = append(out, toPBRecord(&rs[i]))
	}
	return out
}

func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	s.logger.Debug(ctx, "rpc failed", "method", method, "error", err)
	return st
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.CredentialsRequest) (*pb.SessionResponse, error) {
	sess, err := s.vault.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "Register", err)
	}
	return &pb.SessionResponse{SessionToken: sess.Token, Username: sess.UserName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.CredentialsRequest) (*pb.SessionResponse, error) {
	sess, err := s.vault.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "Login", err)
	}
	return &pb.SessionResponse{SessionToken: sess.Token, Username: sess.UserName}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	token, username := credentialsFromContext(ctx)
	if err := s.vault.Logout(ctx, token, username); err != nil {
		return nil, s.fail(ctx, "Logout", err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListPasswords(ctx context.Context, _ *pb.ListPasswordsRequest) (*pb.ListPasswordsResponse, error) {
	token, username := credentialsFromContext(ctx)
	recs, err := s.vault.ListPasswords(ctx, token, username)
	if err != nil {
		return nil, s.fail(ctx, "ListPasswords", err)
	}
	return &pb.ListPasswordsResponse{Passwords: toPBRecords(recs)}, nil
}

func (s *GRPCServer) SearchPasswords(ctx context.Context, req *pb.SearchPasswordsRequest) (*pb.ListPasswordsResponse, error) {
	token, username := credentialsFromContext(ctx)
	recs, err := s.vault.SearchPasswords(ctx, token, username, req.GetSite())
	if err != nil {
		return nil, s.fail(ctx, "SearchPasswords", err)
	}
	return &pb.ListPasswordsResponse{Passwords: toPBRecords(recs)}, nil
}

func (s *GRPCServer) AddPassword(ctx context.Context, req *pb.AddPasswordRequest) (*pb.RecordResponse, error) {
	token, username := credentialsFromContext(ctx)
	rec, err := s.vault.AddPassword(ctx, token, username, models.RecordFields{
		Site:            req.GetSite(),
		AccountUsername: req.GetUsername(),
		Secret:          req.GetPassword(),
		Category:        req.GetCategory(),
		Notes:           req.GetNotes(),
	})
	if err != nil {
		return nil, s.fail(ctx, "AddPassword", err)
	}
	return &pb.RecordResponse{Password: toPBRecord(rec)}, nil
}

// UpdatePassword forwards only the fields present on the wire; unset
// optional fields arrive as nil pointers.
func (s *GRPCServer) UpdatePassword(ctx context.Context, req *pb.UpdatePasswordRequest) (*pb.RecordResponse, error) {
	token, username := credentialsFromContext(ctx)
	rec, err := s.vault.UpdatePassword(ctx, token, username, req.GetId(), models.RecordPatch{
		Site:            req.Site,
		AccountUsername: req.Username,
		Secret:          req.Password,
		Category:        req.Category,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, s.fail(ctx, "UpdatePassword", err)
	}
	return &pb.RecordResponse{Password: toPBRecord(rec)}, nil
}

func (s *GRPCServer) DeletePassword(ctx context.Context, req *pb.DeletePasswordRequest) (*pb.DeletePasswordResponse, error) {
	token, username := credentialsFromContext(ctx)
	if err := s.vault.DeletePassword(ctx, token, username, req.GetId()); err != nil {
		return nil, s.fail(ctx, "DeletePassword", err)
	}
	return &pb.DeletePasswordResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
