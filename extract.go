package cumreturn

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/cumreturn/date"
	"github.com/shopspring/decimal"
)

// ExtractReturns reads periodic returns out of a decoded json document (as
// produced by json.Unmarshal into an 'any').
//
// datesPath and returnsPath are JSONPath expressions, they must select two
// lists of the same length: the days, and the return for each day. For
// instance, in
//
//	{"history": [{"date": "2015-01-10", "r": 0.1}, {"date": "2015-02-10", "r": 0.05}]}
//
// the paths are "$.history[*].date" and "$.history[*].r".
// Returns can be json numbers or numeric strings.
func ExtractReturns(doc any, datesPath, returnsPath string) (Returns, error) {
	jdates, err := jsonlist(doc, datesPath)
	if err != nil {
		return nil, err
	}
	jreturns, err := jsonlist(doc, returnsPath)
	if err != nil {
		return nil, err
	}
	if len(jdates) != len(jreturns) {
		return nil, fmt.Errorf("%q selects %d dates but %q selects %d returns", datesPath, len(jdates), returnsPath, len(jreturns))
	}

	returns := make(Returns, len(jdates))
	for i, jdate := range jdates {
		str, ok := jdate.(string)
		if !ok {
			return nil, fmt.Errorf("%q: item %d must be of type 'string' got %v", datesPath, i, jdate)
		}
		on, err := date.ParseISO(str)
		if err != nil {
			return nil, fmt.Errorf("%q: item %d: %w", datesPath, i, err)
		}
		if _, exists := returns[on]; exists {
			return nil, fmt.Errorf("%q: item %d: day %v is already defined", datesPath, i, on)
		}

		var r float64
		switch v := jreturns[i].(type) {
		case float64:
			r = v
		case string:
			d, err := decimal.NewFromString(v)
			if err != nil {
				return nil, fmt.Errorf("%q: item %d: %w", returnsPath, i, err)
			}
			r = d.InexactFloat64()
		default:
			return nil, fmt.Errorf("%q: item %d must be of type 'number' got %v", returnsPath, i, v)
		}
		returns[on] = r
	}
	return returns, nil
}

// jsonlist evaluates path on doc, and always returns a list.
func jsonlist(doc any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I always get a list.
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}
