package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
)

func (a *App) printRecords(recs []*pb.Record) {
	if len(recs) == 0 {
		a.printf("no passwords stored\n")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSITE\tUSERNAME\tPASSWORD\tCATEGORY\tCREATED")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.GetId(), r.GetSite(), r.GetUsername(), r.GetPassword(), r.GetCategory(),
			r.GetCreatedAt().AsTime().Local().Format(time.DateTime))
	}
	_ = tw.Flush()
}

func (a *App) List(ctx context.Context) {
	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.client.ListPasswords(callCtx, &pb.ListPasswordsRequest{})
	if err != nil {
		a.printErr(err)
		return
	}
	a.printRecords(resp.GetPasswords())
}

func (a *App) Search(ctx context.Context, site string) {
	if site == "" {
		var err error
		if site, err = GetSimpleText(a.reader, "Site", a.out); err != nil {
			a.printErr(err)
			return
		}
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.client.SearchPasswords(callCtx, &pb.SearchPasswordsRequest{Site: site})
	if err != nil {
		a.printErr(err)
		return
	}
	a.printRecords(resp.GetPasswords())
}

// readSecret prompts for an account password. Typing generateAnswer, or
// an empty answer when generateOnEmpty is set, yields a generated one
// that is printed so the user can copy it.
func (a *App) readSecret(prompt string, generateOnEmpty bool) (string, error) {
	secret, err := GetPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(secret)

	answer := string(secret)
	if answer == generateAnswer || (answer == "" && generateOnEmpty) {
		if answer, err = GeneratePassword(); err != nil {
			return "", err
		}
		a.printf("generated password: %s\n", answer)
	}
	return answer, nil
}

func (a *App) Add(ctx context.Context) {
	req := &pb.AddPasswordRequest{}

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Site", &req.Site},
		{"Account username", &req.Username},
	}
	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.label, a.out)
		if err != nil {
			a.printErr(err)
			return
		}
		*p.dst = v
	}

	var err error
	if req.Password, err = a.readSecret("Account password (empty or "+generateAnswer+" to generate)", true); err != nil {
		a.printErr(err)
		return
	}

	if req.Category, err = GetSimpleText(a.reader, "Category", a.out); err != nil {
		a.printErr(err)
		return
	}
	if req.Notes, err = GetSimpleText(a.reader, "Notes", a.out); err != nil {
		a.printErr(err)
		return
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	resp, err := a.client.AddPassword(callCtx, req)
	if err != nil {
		a.printErr(err)
		return
	}
	a.printf("added %s\n", resp.GetPassword().GetId())
}

func (a *App) Update(ctx context.Context, id string) {
	if id == "" {
		a.printf("usage: update <id>\n")
		return
	}

	req := &pb.UpdatePasswordRequest{Id: id}
	prompts := []struct {
		label string
		dst   **string
	}{
		{"Site", &req.Site},
		{"Account username", &req.Username},
		{"Category", &req.Category},
		{"Notes", &req.Notes},
	}
	for _, p := range prompts {
		v, err := GetOptionalText(a.reader, p.label, a.out)
		if err != nil {
			a.printErr(err)
			return
		}
		*p.dst = v
	}

	secret, err := a.readSecret("Account password (empty to keep, "+generateAnswer+" to generate)", false)
	if err != nil {
		a.printErr(err)
		return
	}
	if secret != "" {
		req.Password = &secret
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if _, err := a.client.UpdatePassword(callCtx, req); err != nil {
		a.printErr(err)
		return
	}
	a.printf("updated %s\n", id)
}

func (a *App) Delete(ctx context.Context, id string) {
	if id == "" {
		a.printf("usage: delete <id>\n")
		return
	}

	callCtx, cancel := a.callCtx(ctx)
	defer cancel()

	if _, err := a.client.DeletePassword(callCtx, &pb.DeletePasswordRequest{Id: id}); err != nil {
		a.printErr(err)
		return
	}
	a.printf("deleted %s\n", id)
}
