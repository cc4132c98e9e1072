package client

import (
	"context"
	"time"

	"google.golang.org/grpc"

	"github.com/nikhs247/edgevision/proto/visionstream"
)

// WakeUpCaller triggers a peer's WakeUp RPC. It is independent of any
// streaming session: each call dials, invokes and hangs up.
type WakeUpCaller struct {
	Target string
}

// Call performs the one-shot unary WakeUp RPC against c.Target.
func (c *WakeUpCaller) Call(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, c.Target, grpc.WithInsecure(), grpc.WithBlock())
	if err != nil {
		return err
	}
	defer conn.Close()

	svc := visionstream.NewVisionStreamClient(conn)
	_, err = svc.WakeUp(ctx, &visionstream.WakeUpRequest{})
	return err
}
