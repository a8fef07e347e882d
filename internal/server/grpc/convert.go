package grpc

import (
	"fmt"

	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/rpc"
	"github.com/dmitrijs2005/notto/internal/server/models"
)

func credentialFromProto(c *pb.Credential) (models.Credential, error) {
	params, err := rpc.ParamsFromProto(c.GetParams())
	if err != nil {
		return models.Credential{}, err
	}
	return models.Credential{
		Params:     params,
		Salt:       c.GetSalt(),
		ServerSalt: c.GetServerSalt(),
		StoredHash: c.GetStoredHash(),
	}, nil
}

func userFromProto(req *pb.CreateAccountRequest) (*models.User, error) {
	var (
		user = &models.User{Username: req.GetUsername()}
		err  error
	)
	if user.Password, err = credentialFromProto(req.GetPassword()); err != nil {
		return nil, fmt.Errorf("password: %w", err)
	}
	if user.Recovery, err = credentialFromProto(req.GetRecovery()); err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}
	if user.PasswordKey, err = rpc.KeyFromProto(req.GetPasswordKey()); err != nil {
		return nil, fmt.Errorf("password: %w", err)
	}
	if user.RecoveryKey, err = rpc.KeyFromProto(req.GetRecoveryKey()); err != nil {
		return nil, fmt.Errorf("recovery: %w", err)
	}
	return user, nil
}

func recordFromNote(n *models.Note) *pb.Record {
	return &pb.Record{
		ServerId:   n.ID,
		Ciphertext: n.Ciphertext,
		Nonce:      n.Nonce,
		Timestamp:  n.Timestamp,
		Deleted:    n.Deleted,
		Revision:   n.Revision,
	}
}

func pushItemFromRecord(r *pb.Record) *models.PushItem {
	if r == nil {
		return nil
	}
	return &models.PushItem{
		ClientID:   r.GetClientId(),
		ID:         r.GetServerId(),
		Ciphertext: r.GetCiphertext(),
		Nonce:      r.GetNonce(),
		Timestamp:  r.GetTimestamp(),
		Deleted:    r.GetDeleted(),
	}
}

func pushResultToProto(r *models.PushResult) *pb.PushResult {
	out := &pb.PushResult{
		ClientId: r.ClientID,
		ServerId: r.ID,
		Status:   string(r.Status),
		Revision: r.Revision,
	}
	if r.Current != nil {
		out.Current = recordFromNote(r.Current)
	}
	return out
}
