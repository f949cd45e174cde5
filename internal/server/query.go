package server

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/axis2d/pkg/config"
	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// parseQuery builds an axis file from query parameters on top of
// [config.Default].
func parseQuery(q url.Values) (config.File, error) {
	var (
		o   config.Overrides
		err error
	)
	if o.Min, err = queryFloat(q, "min"); err != nil {
		return config.File{}, err
	}
	if o.Max, err = queryFloat(q, "max"); err != nil {
		return config.File{}, err
	}
	if o.Labels, err = queryInt(q, "labels"); err != nil {
		return config.File{}, err
	}
	if o.Width, err = queryInt(q, "width"); err != nil {
		return config.File{}, err
	}
	if o.Height, err = queryInt(q, "height"); err != nil {
		return config.File{}, err
	}
	if o.P1, err = queryCoordinate(q, "p1"); err != nil {
		return config.File{}, err
	}
	if o.P2, err = queryCoordinate(q, "p2"); err != nil {
		return config.File{}, err
	}
	if q.Has("adjust") {
		v, err := strconv.ParseBool(q.Get("adjust"))
		if err != nil {
			return config.File{}, badParam("adjust", q.Get("adjust"))
		}
		o.Adjust = &v
	}
	if q.Has("format") {
		v := q.Get("format")
		o.Format = &v
	}
	if q.Has("title") {
		v := q.Get("title")
		o.Title = &v
	}
	for _, h := range q["hide"] {
		o.Hide = append(o.Hide, strings.Split(h, ",")...)
	}

	f := config.Default()
	if err := f.Apply(o); err != nil {
		return config.File{}, err
	}
	return f, nil
}

func badParam(name, value string) error {
	return errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, value)
}

func queryFloat(q url.Values, name string) (*float64, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(q.Get(name), 64)
	if err != nil {
		return nil, badParam(name, q.Get(name))
	}
	return &v, nil
}

func queryInt(q url.Values, name string) (*int, error) {
	if !q.Has(name) {
		return nil, nil
	}
	v, err := strconv.Atoi(q.Get(name))
	if err != nil {
		return nil, badParam(name, q.Get(name))
	}
	return &v, nil
}

func queryCoordinate(q url.Values, name string) (*viewport.Coordinate, error) {
	if !q.Has(name) {
		return nil, nil
	}
	c, err := viewport.ParseCoordinate(q.Get(name))
	if err != nil {
		return nil, badParam(name, q.Get(name))
	}
	return &c, nil
}
