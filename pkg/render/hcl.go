// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/yeetrun/yargv/pkg/yargv"
	"github.com/zclconf/go-cty/cty"
)

// encodeHCL writes params as a "params" block. Each selected sub-command
// becomes a nested block named after it.
func encodeHCL(w io.Writer, params *yargv.Params, args []string) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	if err := writeBlock(body.AppendNewBlock("params", nil).Body(), params); err != nil {
		return err
	}
	body.SetAttributeValue("args", stringList(args))
	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}

func writeBlock(body *hclwrite.Body, p *yargv.Params) error {
	for _, key := range p.Keys() {
		v, _ := p.Get(key)
		if sub, ok := v.(*yargv.Params); ok {
			if err := writeBlock(body.AppendNewBlock(key, nil).Body(), sub); err != nil {
				return err
			}
			continue
		}
		cv, err := toCtyValue(v)
		if err != nil {
			return fmt.Errorf("in attribute %q: %w", key, err)
		}
		body.SetAttributeValue(key, cv)
	}
	return nil
}

// toCtyValue converts a parameter state into its cty counterpart.
func toCtyValue(v any) (cty.Value, error) {
	switch v := v.(type) {
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(v))
		for i, e := range v {
			cv, err := toCtyValue(e)
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = cv
		}
		return cty.TupleVal(vals), nil
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(v))
		for k, e := range v {
			cv, err := toCtyValue(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in key %q: %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	case *yargv.Params:
		return toCtyValue(v.Map())
	}
	return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
