package client

import (
	"github.com/dmitrijs2005/notto/internal/client/models"
	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/rpc"
)

func toCredential(c *models.Credential) *pb.Credential {
	return &pb.Credential{
		Params:     rpc.ParamsToProto(c.Params),
		Salt:       c.Salt,
		ServerSalt: c.ServerSalt,
		StoredHash: c.StoredHash,
	}
}

func toRegistration(r *models.Registration) *pb.CreateAccountRequest {
	return &pb.CreateAccountRequest{
		Username:    r.Username,
		Password:    toCredential(&r.Password),
		Recovery:    toCredential(&r.Recovery),
		PasswordKey: rpc.KeyToProto(&r.PasswordKey),
		RecoveryKey: rpc.KeyToProto(&r.RecoveryKey),
	}
}

func fromChallenge(r *pb.LoginChallengeResponse) (*models.Challenge, error) {
	params, err := rpc.ParamsFromProto(r.GetParams())
	if err != nil {
		return nil, err
	}
	return &models.Challenge{Params: params, Salt: r.GetSalt(), ServerSalt: r.GetServerSalt()}, nil
}

func fromGrant(r *pb.LoginResponse) (*models.Grant, error) {
	key, err := rpc.KeyFromProto(r.GetKey())
	if err != nil {
		return nil, err
	}
	return &models.Grant{Key: key, Token: r.GetToken()}, nil
}

func toRecord(n *models.Note) *pb.Record {
	return &pb.Record{
		ClientId:   n.ID,
		ServerId:   n.ServerID,
		Ciphertext: n.Ciphertext,
		Nonce:      n.Nonce,
		Timestamp:  n.Timestamp,
		Deleted:    n.Deleted,
	}
}

func fromRecord(r *pb.Record) *models.RemoteNote {
	if r == nil {
		return nil
	}
	return &models.RemoteNote{
		ServerID:   r.GetServerId(),
		Ciphertext: r.GetCiphertext(),
		Nonce:      r.GetNonce(),
		Timestamp:  r.GetTimestamp(),
		Deleted:    r.GetDeleted(),
		Revision:   r.GetRevision(),
	}
}

func fromResult(r *pb.PushResult) *models.PushVerdict {
	return &models.PushVerdict{
		ClientID: r.GetClientId(),
		ServerID: r.GetServerId(),
		Status:   models.PushStatus(r.GetStatus()),
		Revision: r.GetRevision(),
		Current:  fromRecord(r.GetCurrent()),
	}
}
