package errors

import "errors"

// User-facing remediation messages. The catalog serves a Chinese-speaking
// audience, so these are surfaced verbatim.
const (
	gameNotFoundGuidance = "参数错误，可能是根据关键词搜索不到游戏档案\n" +
		"在使用游戏简称、汉化名、外号等关键字无法查询到目标内容时，" +
		"请使用 游戏原名（全名+标点+大小写无误）再次尝试，或者使用模糊查找"
	noCandidatesGuidance = "模糊搜索无结果，请尝试更改关键词"
)

// GameNotFoundError is returned when an accurate search matches no archive
// (catalog code 614). The message carries remediation guidance for the user.
type GameNotFoundError struct {
	Keyword string
}

func (e *GameNotFoundError) Error() string {
	return gameNotFoundGuidance
}

// NewGameNotFoundError creates a GameNotFoundError for the given keyword.
func NewGameNotFoundError(keyword string) *GameNotFoundError {
	return &GameNotFoundError{Keyword: keyword}
}

// IsGameNotFoundError reports whether err is a GameNotFoundError (even when wrapped).
func IsGameNotFoundError(err error) bool {
	var nfErr *GameNotFoundError
	return errors.As(err, &nfErr)
}

// NoCandidatesError is returned when a list search yields an empty result set.
type NoCandidatesError struct {
	Keyword string
}

func (e *NoCandidatesError) Error() string {
	return noCandidatesGuidance
}

// NewNoCandidatesError creates a NoCandidatesError for the given keyword.
func NewNoCandidatesError(keyword string) *NoCandidatesError {
	return &NoCandidatesError{Keyword: keyword}
}

// IsNoCandidatesError reports whether err is a NoCandidatesError (even when wrapped).
func IsNoCandidatesError(err error) bool {
	var ncErr *NoCandidatesError
	return errors.As(err, &ncErr)
}
