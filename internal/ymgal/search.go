package ymgal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

// SearchGame resolves a keyword to a single archive entry using the
// catalog's accurate mode. Fields missing from the response degrade to
// documented defaults rather than failing. Catalog code 614 becomes a
// GameNotFoundError; any other nonzero code a RemoteError.
func (c *Client) SearchGame(ctx context.Context, keyword string) (*GameRecord, error) {
	params := url.Values{}
	params.Set("mode", "accurate")
	params.Set("keyword", keyword)
	params.Set("similarity", strconv.Itoa(c.similarity))

	endpoint := fmt.Sprintf("%s/open/archive/search-game?%s", c.baseURL, params.Encode())

	var response struct {
		Code int `json:"code"`
		Data struct {
			Game struct {
				GID          int64  `json:"gid"`
				DeveloperID  int64  `json:"developerId"`
				MainImg      string `json:"mainImg"`
				Name         string `json:"name"`
				ReleaseDate  string `json:"releaseDate"`
				Restricted   bool   `json:"restricted"`
				HaveChinese  bool   `json:"haveChinese"`
				ChineseName  string `json:"chineseName"`
				Introduction string `json:"introduction"`
			} `json:"game"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	switch response.Code {
	case codeOK:
		game := response.Data.Game
		return &GameRecord{
			ID:            game.GID,
			PublisherID:   game.DeveloperID,
			CoverURL:      game.MainImg,
			Title:         orUnknown(game.Name),
			ReleaseDate:   orUnknown(game.ReleaseDate),
			AgeRestricted: game.Restricted,
			HasChinese:    game.HaveChinese,
			ChineseTitle:  orUnknown(game.ChineseName),
			Introduction:  orUnknown(game.Introduction),
		}, nil
	case codeNotFound:
		return nil, apperrors.NewGameNotFoundError(keyword)
	default:
		return nil, apperrors.NewRemoteError("search-game", response.Code)
	}
}

// ListSearch resolves an approximate keyword via the catalog's list mode and
// returns the top candidate's canonical name, trusting the remote ranking.
// An empty candidate list becomes a NoCandidatesError.
func (c *Client) ListSearch(ctx context.Context, keyword string, page, pageSize int) (string, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	params := url.Values{}
	params.Set("mode", "list")
	params.Set("keyword", keyword)
	params.Set("pageNum", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	endpoint := fmt.Sprintf("%s/open/archive/search-game?%s", c.baseURL, params.Encode())

	var response struct {
		Code int `json:"code"`
		Data struct {
			Result []struct {
				Name string `json:"name"`
			} `json:"result"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return "", err
	}

	if response.Code != codeOK {
		return "", apperrors.NewRemoteError("list-search", response.Code)
	}
	if len(response.Data.Result) == 0 {
		return "", apperrors.NewNoCandidatesError(keyword)
	}

	return response.Data.Result[0].Name, nil
}
