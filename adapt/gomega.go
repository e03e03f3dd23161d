// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package adapt

import (
	"github.com/onsi/gomega/types"
	"github.com/pkg/errors"

	"go.chromium.org/expect/failure"
	"go.chromium.org/expect/matcher"
)

type gomegaMatcher[T any] struct {
	m matcher.Matcher[T]
}

// Gomega exposes `m` as a gomega matcher, for use with gomega's Expect and
// Ω. Match fails with an error when the actual value is not a T, or is a
// value `m` does not apply to.
func Gomega[T any](m matcher.Matcher[T]) types.GomegaMatcher {
	return gomegaMatcher[T]{m}
}

func (g gomegaMatcher[T]) Match(actual any) (bool, error) {
	v, err := cast[T](actual)
	if err != nil {
		return false, errors.Wrapf(err, "adapt.Gomega(%T)", g.m)
	}
	if err := matcher.CheckOperand[T](g.m, v); err != nil {
		return false, errors.Wrapf(err, "adapt.Gomega(%T)", g.m)
	}
	return g.m.Match(v), nil
}

func (g gomegaMatcher[T]) FailureMessage(actual any) string {
	v, err := cast[T](actual)
	if err != nil {
		return err.Error()
	}
	return g.m.FailMsg(v)
}

func (g gomegaMatcher[T]) NegatedFailureMessage(actual any) string {
	v, err := cast[T](actual)
	if err != nil {
		return err.Error()
	}
	return g.m.NegatedFailMsg(v)
}

// GomegaMatcher is a Matcher backed by a gomega matcher.
type GomegaMatcher[T any] struct {
	gm types.GomegaMatcher
}

var _ matcher.Explainer[int] = (*GomegaMatcher[int])(nil)

// FromGomega uses the gomega matcher `gm` as a Matcher. If `gm` returns an
// error, the value does not match and the error is attached as a finding.
func FromGomega[T any](gm types.GomegaMatcher) matcher.Matcher[T] {
	return &GomegaMatcher[T]{gm}
}

func (g *GomegaMatcher[T]) Match(actual T) bool {
	ok, err := g.gm.Match(actual)
	return err == nil && ok
}

func (g *GomegaMatcher[T]) FailMsg(actual T) string {
	return g.gm.FailureMessage(actual)
}

func (g *GomegaMatcher[T]) NegatedFailMsg(actual T) string {
	return g.gm.NegatedFailureMessage(actual)
}

func (g *GomegaMatcher[T]) Explain(actual T, negated bool) []*failure.Finding {
	if _, err := g.gm.Match(actual); err != nil {
		return []*failure.Finding{failure.Because("gomega matcher %T failed: %s", g.gm, err)}
	}
	return nil
}
