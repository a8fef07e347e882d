package rpc

import (
	"testing"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

var fastParams = cryptox.KDFParams{Memory: 64, Iterations: 1, Parallelism: 1}

func TestWrappedKey_OverTheWire(t *testing.T) {
	mek := cryptox.NewMasterKey()
	wrapped, err := cryptox.WrapWithSecret(mek, []byte("hunter2"), fastParams, cryptox.LabelPassword)
	require.NoError(t, err)

	b, err := proto.Marshal(&pb.LoginResponse{Key: KeyToProto(wrapped), Token: "t"})
	require.NoError(t, err)

	var resp pb.LoginResponse
	require.NoError(t, proto.Unmarshal(b, &resp))

	got, err := KeyFromProto(resp.GetKey())
	require.NoError(t, err)
	if diff := cmp.Diff(*wrapped, got); diff != "" {
		t.Fatalf("wrapped key changed in transit (-want +got):\n%s", diff)
	}

	unwrapped, err := got.UnwrapWithSecret([]byte("hunter2"), cryptox.LabelPassword)
	require.NoError(t, err)
	assert.Equal(t, mek, unwrapped)
}

func TestParamsToProto(t *testing.T) {
	want := &pb.KDFParams{Memory: 19456, Iterations: 2, Parallelism: 1, HashLen: cryptox.KeySize}
	if diff := cmp.Diff(want, ParamsToProto(cryptox.DefaultKDFParams()), protocmp.Transform()); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParamsFromProto(t *testing.T) {
	tests := []struct {
		name    string
		in      *pb.KDFParams
		want    cryptox.KDFParams
		wantErr bool
	}{
		{
			name: "defaults",
			in:   &pb.KDFParams{Memory: 19456, Iterations: 2, Parallelism: 1, HashLen: cryptox.KeySize},
			want: cryptox.DefaultKDFParams(),
		},
		{
			name: "missing message",
			in:   nil,
			want: cryptox.KDFParams{},
		},
		{
			name:    "parallelism overflows uint8",
			in:      &pb.KDFParams{Memory: 19456, Iterations: 2, Parallelism: 256},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParamsFromProto(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyFromProto_BadParams(t *testing.T) {
	_, err := KeyFromProto(&pb.WrappedKey{Params: &pb.KDFParams{Parallelism: 1 << 10}})
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "wrapped key")
}

func TestKeyToProto_Nil(t *testing.T) {
	assert.Nil(t, KeyToProto(nil))

	got, err := KeyFromProto(nil)
	require.NoError(t, err)
	assert.Equal(t, cryptox.WrappedKey{}, got)
}
