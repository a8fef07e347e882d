package rpc

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	pb "github.com/dmitrijs2005/notto/internal/proto"
)

// Push verdicts, as carried in pb.PushResult.Status.
const (
	PushStatusOK       = "ok"
	PushStatusConflict = "conflict"
)

func ParamsToProto(p cryptox.KDFParams) *pb.KDFParams {
	return &pb.KDFParams{
		Memory:      p.Memory,
		Iterations:  p.Iterations,
		Parallelism: uint32(p.Parallelism),
		HashLen:     p.HashLen,
	}
}

// ParamsFromProto reads KDF parameters off the wire. A missing message reads
// as zero parameters, which cryptox rejects on use.
func ParamsFromProto(p *pb.KDFParams) (cryptox.KDFParams, error) {
	if p.GetParallelism() > math.MaxUint8 {
		return cryptox.KDFParams{}, fmt.Errorf("%w: parallelism %d out of range", common.ErrInvalidArgument, p.GetParallelism())
	}
	return cryptox.KDFParams{
		Memory:      p.GetMemory(),
		Iterations:  p.GetIterations(),
		Parallelism: uint8(p.GetParallelism()),
		HashLen:     p.GetHashLen(),
	}, nil
}

func KeyToProto(k *cryptox.WrappedKey) *pb.WrappedKey {
	if k == nil {
		return nil
	}
	return &pb.WrappedKey{
		Params:     ParamsToProto(k.Params),
		Salt:       k.Salt,
		Nonce:      k.Nonce,
		Ciphertext: k.Ciphertext,
	}
}

func KeyFromProto(k *pb.WrappedKey) (cryptox.WrappedKey, error) {
	params, err := ParamsFromProto(k.GetParams())
	if err != nil {
		return cryptox.WrappedKey{}, fmt.Errorf("wrapped key: %w", err)
	}
	return cryptox.WrappedKey{
		Params:     params,
		Salt:       k.GetSalt(),
		Nonce:      k.GetNonce(),
		Ciphertext: k.GetCiphertext(),
	}, nil
}
