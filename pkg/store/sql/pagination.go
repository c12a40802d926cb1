package sql

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aigovhub/lineage/pkg/contract"
	"github.com/aigovhub/lineage/pkg/utils"
)

type PageToken struct {
	Offset int32 `json:"offset"`
}

func getOffset(pageToken string) (int, *contract.Error) {
	if pageToken == "" {
		return 0, nil
	}

	var token PageToken
	if err := json.NewDecoder(
		base64.NewDecoder(
			base64.StdEncoding,
			strings.NewReader(pageToken),
		),
	).Decode(&token); err != nil {
		return 0, contract.NewErrorWith(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf("invalid page_token: %q", pageToken),
			err,
		)
	}

	if token.Offset < 0 {
		return 0, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf("invalid page_token: %q", pageToken),
		)
	}

	return int(token.Offset), nil
}

// mkNextPageToken returns a token for the following page when the current one is full.
func mkNextPageToken(length, maxResults, offset int) (*string, *contract.Error) {
	if maxResults <= 0 || length < maxResults {
		return nil, nil
	}

	var token strings.Builder

	encoder := base64.NewEncoder(base64.StdEncoding, &token)
	if err := json.NewEncoder(encoder).Encode(PageToken{
		Offset: int32(offset + maxResults), //nolint:gosec
	}); err != nil {
		return nil, contract.NewErrorWith(
			contract.ErrorCodeInternalError,
			"error encoding 'next_page_token' value",
			err,
		)
	}

	if err := encoder.Close(); err != nil {
		return nil, contract.NewErrorWith(
			contract.ErrorCodeInternalError,
			"error encoding 'next_page_token' value",
			err,
		)
	}

	return utils.PtrTo(token.String()), nil
}
