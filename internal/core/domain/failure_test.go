package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/core/domain"
)

func TestFlatten(t *testing.T) {
	diskFull := errors.New("disk full")
	timeout := errors.New("timeout")
	denied := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		want []error
	}{
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
		{
			name: "plain error is a leaf",
			err:  diskFull,
			want: []error{diskFull},
		},
		{
			name: "invocation wrapper reports only its cause",
			err:  &domain.InvocationError{Target: domain.NewInternedString("A"), Err: diskFull},
			want: []error{diskFull},
		},
		{
			name: "phase failure reports only its cause",
			err:  domain.NewFailure(domain.FailureInjection, timeout),
			want: []error{timeout},
		},
		{
			name: "composite of invocation errors",
			err: errors.Join(
				&domain.InvocationError{Target: domain.NewInternedString("A"), Err: diskFull},
				&domain.InvocationError{Target: domain.NewInternedString("B"), Err: timeout},
			),
			want: []error{diskFull, timeout},
		},
		{
			name: "nested composites are flattened",
			err: domain.NewFailure(domain.FailureExecution, errors.Join(
				diskFull,
				errors.Join(timeout, &domain.InvocationError{Err: denied}),
			)),
			want: []error{diskFull, timeout, denied},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Flatten(tt.err)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Same(t, tt.want[i], got[i])
			}
		})
	}
}

func TestFlatten_WrappedCompositeIsLeaf(t *testing.T) {
	inner := errors.Join(errors.New("a"), errors.New("b"))
	wrapped := &wrapErr{msg: "while packing", err: inner}

	got := domain.Flatten(wrapped)
	require.Len(t, got, 1)
	assert.Same(t, error(wrapped), got[0])
}

func TestFailure_MessageAndKind(t *testing.T) {
	cause := errors.New("missing parameter X")
	f := domain.NewFailure(domain.FailureInjection, cause)

	assert.Equal(t, "missing parameter X", f.Error())
	assert.ErrorIs(t, f, cause)

	kind, ok := domain.KindOf(f)
	require.True(t, ok)
	assert.Equal(t, domain.FailureInjection, kind)

	assert.Nil(t, domain.NewFailure(domain.FailureExecution, nil))
}

type wrapErr struct {
	msg string
	err error
}

func (w *wrapErr) Error() string { return w.msg + ": " + w.err.Error() }
func (w *wrapErr) Unwrap() error { return w.err }
