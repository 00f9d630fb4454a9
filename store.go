package jsoncache

import (
	"context"
	"fmt"

	c "github.com/unkn0wn-root/jsoncache/codec"
	"github.com/unkn0wn-root/jsoncache/internal/serial"
	pr "github.com/unkn0wn-root/jsoncache/provider"
	"github.com/unkn0wn-root/jsoncache/provider/file"
)

// document is the variant side of persistence: each cache knows the JSON shape
// it stores and how to move its value in and out of a JSON document.
type document interface {
	shape() Shape
	// encode returns the canonical JSON form of the current value.
	encode() ([]byte, error)
	// decode parses doc completely before replacing the current value,
	// so a failed decode leaves the value untouched.
	decode(doc []byte) error
}

// store binds a document to a provider. Load and Save are linearized by exec.
type store struct {
	doc      document
	provider pr.Provider
	codec    c.Codec
	log      Logger
	hooks    Hooks
	exec     serial.Executor
}

func newStore(doc document, opts Options) (*store, error) {
	if opts.Provider == nil && opts.Path == "" {
		return nil, fmt.Errorf("jsoncache: path or provider is required")
	}

	s := &store{doc: doc}
	if opts.Provider != nil {
		s.provider = opts.Provider
	} else {
		s.provider = file.New(opts.Path, opts.FileMode)
	}

	// defaults
	s.codec = coalesce[c.Codec](opts.Codec, c.JSON{})
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return s, nil
}

func (s *store) Location() string { return s.provider.Location() }

func (s *store) Load(ctx context.Context) (bool, error) {
	return serial.Do(ctx, &s.exec, func() (bool, error) {
		return s.load(context.WithoutCancel(ctx))
	})
}

func (s *store) LoadSync() (bool, error) {
	return s.load(context.Background())
}

func (s *store) Save(ctx context.Context) error {
	_, err := serial.Do(ctx, &s.exec, func() (struct{}, error) {
		return struct{}{}, s.save(context.WithoutCancel(ctx))
	})
	return err
}

func (s *store) load(ctx context.Context) (bool, error) {
	loc := s.Location()
	raw, ok, err := s.provider.Get(ctx)
	if err != nil {
		s.log.Error("load failed", Fields{"location": loc, "err": err})
		s.hooks.LoadRejected(loc, "io", err)
		return false, fmt.Errorf("jsoncache: load %s: %w", loc, err)
	}
	if !ok || len(raw) == 0 {
		reason := "missing"
		if ok {
			reason = "empty"
		}
		s.log.Debug("nothing to load", Fields{"location": loc, "reason": reason})
		s.hooks.LoadSkipped(loc, reason)
		return false, nil
	}

	doc, err := s.codec.Decode(raw)
	if err != nil {
		return false, s.rejectParse(loc, err)
	}
	got, err := shapeOf(doc)
	if err != nil {
		return false, s.rejectParse(loc, err)
	}
	if want := s.doc.shape(); got != want {
		err := &ShapeMismatchError{Location: loc, Want: want, Got: got}
		s.log.Warn("load rejected (shape mismatch)", Fields{"location": loc, "shape": got.String()})
		s.hooks.LoadRejected(loc, "shape", err)
		return false, err
	}
	if err := s.doc.decode(doc); err != nil {
		return false, s.rejectParse(loc, err)
	}

	s.log.Debug("loaded", Fields{"location": loc, "bytes": len(raw)})
	s.hooks.Loaded(loc, len(raw))
	return true, nil
}

func (s *store) rejectParse(loc string, cause error) error {
	err := &ParseError{Location: loc, Err: cause}
	s.log.Warn("load rejected (parse)", Fields{"location": loc, "err": cause})
	s.hooks.LoadRejected(loc, "parse", err)
	return err
}

func (s *store) save(ctx context.Context) error {
	loc := s.Location()
	doc, err := s.doc.encode()
	if err == nil {
		doc, err = s.codec.Encode(doc)
	}
	if err != nil {
		err = fmt.Errorf("jsoncache: encode %s: %w", loc, err)
		s.log.Error("persist failed", Fields{"location": loc, "err": err})
		s.hooks.PersistFailed(loc, err)
		return err
	}

	if err := s.provider.Put(ctx, doc); err != nil {
		s.log.Error("persist failed", Fields{"location": loc, "err": err})
		s.hooks.PersistFailed(loc, err)
		return fmt.Errorf("jsoncache: save %s: %w", loc, err)
	}
	s.log.Debug("persisted", Fields{"location": loc, "bytes": len(doc)})
	s.hooks.Persisted(loc, len(doc))
	return nil
}
