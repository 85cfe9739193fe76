package cli

import (
	"context"

	"github.com/dmitrijs2005/passvault/internal/common"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
)

type openSessionFunc func(ctx context.Context, in *pb.CredentialsRequest) (*pb.SessionResponse, error)

func (a *App) Register(ctx context.Context) {
	a.openSession(ctx, "registered", func(ctx context.Context, in *pb.CredentialsRequest) (*pb.SessionResponse, error) {
		return a.client.Register(ctx, in)
	})
}

func (a *App) Login(ctx context.Context) {
	a.openSession(ctx, "logged in", func(ctx context.Context, in *pb.CredentialsRequest) (*pb.SessionResponse, error) {
		return a.client.Login(ctx, in)
	})
}

func (a *App) openSession(ctx context.Context, done string, open openSessionFunc) {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		a.printErr(err)
		return
	}

	password, err := GetPassword(a.out, "Password")
	if err != nil {
		a.printErr(err)
		return
	}
	defer common.WipeByteArray(password)

	// a fresh login replaces whatever session we had
	a.token, a.userName = "", ""

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := open(callCtx, &pb.CredentialsRequest{Username: userName, Password: string(password)})
	if err != nil {
		a.printErr(err)
		return
	}

	a.token, a.userName = resp.GetSessionToken(), resp.GetUsername()
	a.printf("%s as %s\n", done, a.userName)
}

func (a *App) Logout(ctx context.Context) {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if _, err := a.client.Logout(callCtx, &pb.LogoutRequest{}); err != nil {
		a.printErr(err)
	}
	a.token, a.userName = "", ""
	a.printf("logged out\n")
}

func (a *App) Ping(ctx context.Context) {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.client.Ping(callCtx, &pb.PingRequest{})
	if err != nil {
		a.printErr(err)
		return
	}
	a.printf("server: %s\n", resp.GetStatus())
}
