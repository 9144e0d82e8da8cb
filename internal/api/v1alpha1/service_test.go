package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/hexpath/internal/api/v1alpha1"
)

func TestCodec_WireFormat(t *testing.T) {
	codec := v1alpha1.Codec{}
	assert.Equal(t, "json", codec.Name())

	data, err := codec.Marshal(&v1alpha1.FindPathRequest{
		RequestType: "dijkstra",
		Source:      &v1alpha1.Offset{Row: 0, Col: 0},
		Target:      &v1alpha1.Offset{Row: 2, Col: 2},
		Grid:        [][]string{{"s", "b"}, {"b", "e"}},
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"request_type":"dijkstra","source":{"row":0,"col":0},"target":{"row":2,"col":2},"grid":[["s","b"],["b","e"]]}`,
		string(data))

	var resp v1alpha1.FindPathResponse
	require.NoError(t, codec.Unmarshal([]byte(`{"path":["Hex(0,0,0)"]}`), &resp))
	assert.Equal(t, []string{"Hex(0,0,0)"}, resp.GetPath())

	err = codec.Unmarshal([]byte(`{"path":`), &resp)
	assert.Error(t, err)
}

func TestCodec_Registered(t *testing.T) {
	assert.NotNil(t, encoding.GetCodec(v1alpha1.CodecName))
}

func TestGetters_NilSafe(t *testing.T) {
	var req *v1alpha1.FindPathRequest
	assert.Empty(t, req.GetRequestType())
	assert.Nil(t, req.GetSource())
	assert.Nil(t, req.GetTarget())
	assert.Nil(t, req.GetGrid())

	var resp *v1alpha1.FindPathResponse
	assert.Nil(t, resp.GetPath())
}

type echoServer struct {
	v1alpha1.UnimplementedPathfinderServiceServer
	seen *v1alpha1.FindPathRequest
}

func (s *echoServer) FindPath(_ context.Context, req *v1alpha1.FindPathRequest) (*v1alpha1.FindPathResponse, error) {
	s.seen = req
	return &v1alpha1.FindPathResponse{Path: []string{req.RequestType}}, nil
}

func dial(t *testing.T, srv v1alpha1.PathfinderServiceServer) v1alpha1.PathfinderServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	v1alpha1.RegisterPathfinderServiceServer(server, srv)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return v1alpha1.NewPathfinderServiceClient(conn)
}

func TestPathfinderService_RoundTrip(t *testing.T) {
	srv := &echoServer{}
	client := dial(t, srv)

	resp, err := client.FindPath(context.Background(), &v1alpha1.FindPathRequest{
		RequestType: "dijkstra",
		Source:      &v1alpha1.Offset{Row: 1, Col: 2},
		Target:      &v1alpha1.Offset{Row: -3, Col: 4},
		Grid:        [][]string{{"s", "e"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"dijkstra"}, resp.Path)

	require.NotNil(t, srv.seen)
	assert.Equal(t, &v1alpha1.Offset{Row: 1, Col: 2}, srv.seen.Source)
	assert.Equal(t, &v1alpha1.Offset{Row: -3, Col: 4}, srv.seen.Target)
	assert.Equal(t, [][]string{{"s", "e"}}, srv.seen.Grid)
}

func TestPathfinderService_Unimplemented(t *testing.T) {
	client := dial(t, v1alpha1.UnimplementedPathfinderServiceServer{})

	_, err := client.FindPath(context.Background(), &v1alpha1.FindPathRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
