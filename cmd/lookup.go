package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Hxfrzc/galinfo/internal/config"
	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
	"github.com/Hxfrzc/galinfo/internal/galinfo"
	"github.com/Hxfrzc/galinfo/internal/ymgal"
)

// LookupCmd represents the exact-title lookup command
type LookupCmd struct {
	Keyword   []string `arg:"" help:"Game title to look up"`
	KeepImage bool     `help:"Keep the converted cover image on disk after printing its path" default:"true" negatable:""`
}

// FuzzyCmd represents the approximate-title lookup command
type FuzzyCmd struct {
	Keyword   []string `arg:"" help:"Approximate game title to resolve first"`
	KeepImage bool     `help:"Keep the converted cover image on disk after printing its path" default:"true" negatable:""`
}

func (l *LookupCmd) Run() error {
	ctx := context.Background()
	svc, stop, err := newService(ctx)
	if err != nil {
		return err
	}
	defer stop()

	result, err := svc.Lookup(ctx, strings.Join(l.Keyword, " "))
	if err != nil {
		return renderExpected(err)
	}

	printResult(svc, result, l.KeepImage)
	return nil
}

func (f *FuzzyCmd) Run() error {
	ctx := context.Background()
	svc, stop, err := newService(ctx)
	if err != nil {
		return err
	}
	defer stop()

	fuzzy, err := svc.FuzzyLookup(ctx, strings.Join(f.Keyword, " "))
	if err != nil {
		return renderExpected(err)
	}

	fmt.Printf("已匹配最符合的一条：%s\n\n", fuzzy.Corrected)
	printResult(svc, fuzzy.Result, f.KeepImage)
	return nil
}

// newService wires config, catalog client and token refresher into a
// Service. The returned stop function shuts the refresher down.
func newService(ctx context.Context) (*galinfo.Service, func(), error) {
	client := ymgal.NewClient(config.ClientID, config.ClientSecret,
		ymgal.WithSimilarity(config.Similarity),
	)

	refresher := ymgal.NewRefresher(client.FetchToken, config.TokenRefresh)
	if err := refresher.Start(ctx); err != nil {
		// Requests will fail with a credential error until a refresh succeeds.
		slog.Warn("Starting with no valid token", "error", err)
	}
	client.SetTokenSource(refresher)

	svc, err := galinfo.New(client, config.TempDir,
		galinfo.WithStrictPublisher(config.StrictPublisher),
		galinfo.WithTimeout(config.RequestTimeout),
	)
	if err != nil {
		refresher.Stop()
		return nil, nil, err
	}

	return svc, refresher.Stop, nil
}

// renderExpected prints user-recoverable failures (no match, no candidates)
// as plain guidance; anything else propagates to the generic error exit.
func renderExpected(err error) error {
	if apperrors.IsGameNotFoundError(err) || apperrors.IsNoCandidatesError(err) {
		fmt.Println(err.Error())
		return nil
	}
	return err
}

func printResult(svc *galinfo.Service, result *galinfo.Result, keepImage bool) {
	fmt.Println(result.Text)
	fmt.Printf("\nCover image: %s\n", result.ImagePath)
	if !keepImage {
		svc.Cleanup(result.ImagePath)
	}
}
