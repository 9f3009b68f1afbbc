package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/snapdeck/deckcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all. Failed decodes and
	// negative-memo hits are the hot events when a host is fed garbage.
	DecodeFailedEvery uint64
	NegativeHitEvery  uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeFailedCtr atomic.Uint64
	negativeHitCtr  atomic.Uint64
}

var _ deckcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil {
		return
	}
	h.l.Debug("deckcache.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) SetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("deckcache.set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) DecodeFailed(kind string) {
	if h.l == nil || !sample(h.opts.DecodeFailedEvery, &h.decodeFailedCtr) {
		return
	}
	h.l.Info("deckcache.decode_failed",
		"kind", kind)
}

func (h *Hooks) NegativeHit(storageKey string) {
	if h.l == nil || !sample(h.opts.NegativeHitEvery, &h.negativeHitCtr) {
		return
	}
	h.l.Debug("deckcache.negative_hit",
		"key", h.redact(storageKey))
}
