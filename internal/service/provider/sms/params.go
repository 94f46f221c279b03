package sms

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/ecodeclub/ekit/mapx"
)

const (
	// OK is the success code of an aliyun send.
	OK = "OK"
	// Ok is the success code of a tencent send status.
	Ok = "Ok"
)

// stringParams renders every placeholder value as a string, the SMS gateways
// only accept string substitutions.
func stringParams(personalisation map[string]any) map[string]string {
	out := make(map[string]string, len(personalisation))
	for k, v := range personalisation {
		out[k] = fmt.Sprint(v)
	}
	return out
}

// jsonParams is the aliyun TemplateParam form: a JSON object.
func jsonParams(personalisation map[string]any) (string, error) {
	if len(personalisation) == 0 {
		return "", nil
	}
	buf, err := json.Marshal(stringParams(personalisation))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	return string(buf), nil
}

// orderedParams is the tencent TemplateParamSet form: positional values,
// ordered by placeholder name.
func orderedParams(personalisation map[string]any) []string {
	params := stringParams(personalisation)
	keys := mapx.Keys(params)
	slices.Sort(keys)
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, params[k])
	}
	return values
}
