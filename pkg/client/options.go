package client

import (
	"maps"
	"time"
)

// RequestOptions are per-call overrides passed through to the transport
type RequestOptions struct {
	Timeout                   time.Duration
	AdditionalHeaders         map[string]string
	AdditionalQueryParameters map[string]string
	AdditionalBodyParameters  map[string]any
}

// RequestOption mutates RequestOptions for a single call
type RequestOption func(*RequestOptions)

// NewRequestOptions applies opts in order
func NewRequestOptions(opts ...RequestOption) RequestOptions {
	var o RequestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithRequestTimeout bounds the call with a deadline
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(o *RequestOptions) {
		o.Timeout = timeout
	}
}

func WithRequestHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.AdditionalHeaders == nil {
			o.AdditionalHeaders = make(map[string]string)
		}
		o.AdditionalHeaders[key] = value
	}
}

func WithQueryParameter(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.AdditionalQueryParameters == nil {
			o.AdditionalQueryParameters = make(map[string]string)
		}
		o.AdditionalQueryParameters[key] = value
	}
}

// WithBodyParameter merges an extra top-level field into the JSON body
func WithBodyParameter(key string, value any) RequestOption {
	return func(o *RequestOptions) {
		if o.AdditionalBodyParameters == nil {
			o.AdditionalBodyParameters = make(map[string]any)
		}
		o.AdditionalBodyParameters[key] = value
	}
}

// WithRequestOptions merges a prepared RequestOptions value
func WithRequestOptions(in RequestOptions) RequestOption {
	return func(o *RequestOptions) {
		if in.Timeout > 0 {
			o.Timeout = in.Timeout
		}
		if len(in.AdditionalHeaders) > 0 {
			if o.AdditionalHeaders == nil {
				o.AdditionalHeaders = make(map[string]string, len(in.AdditionalHeaders))
			}
			maps.Copy(o.AdditionalHeaders, in.AdditionalHeaders)
		}
		if len(in.AdditionalQueryParameters) > 0 {
			if o.AdditionalQueryParameters == nil {
				o.AdditionalQueryParameters = make(map[string]string, len(in.AdditionalQueryParameters))
			}
			maps.Copy(o.AdditionalQueryParameters, in.AdditionalQueryParameters)
		}
		if len(in.AdditionalBodyParameters) > 0 {
			if o.AdditionalBodyParameters == nil {
				o.AdditionalBodyParameters = make(map[string]any, len(in.AdditionalBodyParameters))
			}
			maps.Copy(o.AdditionalBodyParameters, in.AdditionalBodyParameters)
		}
	}
}
