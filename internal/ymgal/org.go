package ymgal

import (
	"context"
	"fmt"

	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

// OrgInfo fetches a standalone organization record. Serves the
// "show me this publisher" call site; MergeOrg shares the same fetch.
func (c *Client) OrgInfo(ctx context.Context, orgID int64) (*Publisher, error) {
	return c.fetchOrg(ctx, orgID)
}

// MergeOrg resolves the record's publisher reference and returns the merged
// form with the reference replaced by denormalized publisher names.
func (c *Client) MergeOrg(ctx context.Context, rec *GameRecord) (*MergedRecord, error) {
	org, err := c.fetchOrg(ctx, rec.PublisherID)
	if err != nil {
		return nil, err
	}
	return rec.WithPublisher(org.Name, org.ChineseName), nil
}

func (c *Client) fetchOrg(ctx context.Context, orgID int64) (*Publisher, error) {
	endpoint := fmt.Sprintf("%s/open/archive?orgId=%d", c.baseURL, orgID)

	var response struct {
		Code int `json:"code"`
		Data struct {
			Org struct {
				Name         string `json:"name"`
				ChineseName  string `json:"chineseName"`
				Introduction string `json:"introduction"`
				Country      string `json:"country"`
			} `json:"org"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	if response.Code != codeOK {
		return nil, apperrors.NewOrgNotFoundError(orgID, response.Code)
	}

	org := response.Data.Org
	return &Publisher{
		Name:         orUnknown(org.Name),
		ChineseName:  orUnknown(org.ChineseName),
		Introduction: orUnknown(org.Introduction),
		Country:      orUnknown(org.Country),
	}, nil
}
