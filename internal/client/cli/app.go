// Package cli is the interactive passvault client. It talks to the server
// over gRPC and keeps the session token in memory only.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/passvault/internal/client/config"
	"github.com/dmitrijs2005/passvault/internal/common"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type App struct {
	config   *config.Config
	client   pb.VaultServiceClient
	closer   io.Closer
	reader   *bufio.Reader
	out      io.Writer
	token    string
	userName string
}

// NewApp connects to the configured server. The connection is lazy, so an
// unreachable server only shows up on the first command.
func NewApp(c *config.Config) (*App, error) {
	conn, err := grpc.NewClient(c.ServerEndpointAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}

	a := newApp(c, pb.NewVaultServiceClient(conn), os.Stdin, os.Stdout)
	a.closer = conn
	return a, nil
}

func newApp(c *config.Config, client pb.VaultServiceClient, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: client, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	if a.closer != nil {
		defer a.closer.Close()
	}
	a.repl(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

// callCtx bounds one request and, when logged in, attaches credentials.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	if a.isLoggedIn() {
		ctx = metadata.AppendToOutgoingContext(ctx,
			common.AuthorizationMetadataKey, a.token,
			common.UsernameMetadataKey, a.userName,
		)
	}
	return ctx, cancel
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// printErr shows the server's status message rather than the full
// "rpc error: code = ..." string.
func (a *App) printErr(err error) {
	a.printf("error: %s\n", status.Convert(err).Message())
}
