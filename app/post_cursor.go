package app

import (
	"context"
	"encoding/json"
	"errors"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
)

type PostCursorOpts struct {
	Limit int16
}

// PostCursor pages through posts; each call returns the page plus the cursor
// for the next one (nil when the feed is exhausted). subjectId is 0 for
// anonymous callers.
type PostCursor interface {
	Posts(ctx context.Context, db appDb.Database, subjectId int64, opts *PostCursorOpts) (posts []*model.Post, cursor interface{}, err error)
}

type PostCursorType string

const (
	PostCursorTypeMostRecent  PostCursorType = "MOST_RECENT"
	PostCursorTypeMostPopular PostCursorType = "MOST_POPULAR"
)

var ErrUnknownCursorType = errors.New("unknown cursor type")

// TaggedUnionCursor decodes a {cursorType, cursor} envelope into the concrete
// cursor named by the discriminator.
type TaggedUnionCursor struct {
	PostCursor
	CursorType PostCursorType
}

func (tuc *TaggedUnionCursor) UnmarshalJSON(data []byte) error {
	if tuc == nil {
		return nil
	}
	var rawJsonWithType struct {
		CursorType PostCursorType   `json:"cursorType"`
		Raw        *json.RawMessage `json:"cursor"`
	}
	if err := json.Unmarshal(data, &rawJsonWithType); err != nil {
		return err
	}

	tuc.CursorType = rawJsonWithType.CursorType

	var cursorRef interface{}
	switch rawJsonWithType.CursorType {
	case PostCursorTypeMostRecent:
		cursorRef = &MostRecentCursor{}
	case PostCursorTypeMostPopular:
		cursorRef = &MostPopularCursor{}
	default:
		return ErrUnknownCursorType
	}

	if rawJsonWithType.Raw != nil {
		if err := json.Unmarshal(*rawJsonWithType.Raw, cursorRef); err != nil {
			return err
		}
	}

	tuc.PostCursor = cursorRef.(PostCursor)
	return nil
}

func (tuc *TaggedUnionCursor) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CursorType PostCursorType `json:"cursorType"`
		Cursor     PostCursor     `json:"cursor"`
	}{
		CursorType: tuc.CursorType,
		Cursor:     tuc.PostCursor,
	})
}
