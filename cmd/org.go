package cmd

import (
	"context"
	"fmt"

	"github.com/Hxfrzc/galinfo/internal/summary"
)

// OrgCmd represents the standalone organization lookup command
type OrgCmd struct {
	ID int64 `arg:"" help:"Organization id from the catalog"`
}

func (o *OrgCmd) Run() error {
	ctx := context.Background()
	svc, stop, err := newService(ctx)
	if err != nil {
		return err
	}
	defer stop()

	pub, err := svc.PublisherInfo(ctx, o.ID)
	if err != nil {
		return err
	}

	fmt.Println(summary.RenderPublisher(pub))
	return nil
}
