// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package belnap

// PowerSet is an arbitrary subset of the four Belnapian values, including the
// empty set and the singletons which Unknown deliberately rules out.  It is
// the escape hatch for set-level bookkeeping (e.g. accumulating candidates
// across a scan) before narrowing back into the operational types.
type PowerSet uint8

// EmptySet is the subset holding no candidates at all.
const EmptySet PowerSet = 0

// Singleton constructs the subset holding exactly the given value.
func Singleton(b Belnapian) PowerSet {
	return PowerSet(1) << b
}

// FullSet is the subset holding all four values.
const FullSet = PowerSet(NFTB)

// Union combines the candidates of both subsets.
func (p PowerSet) Union(other PowerSet) PowerSet {
	return p | other
}

// Intersection keeps only the candidates present in both subsets.
func (p PowerSet) Intersection(other PowerSet) PowerSet {
	return p & other
}

// Contains reports whether the given value is a member of this subset.
func (p PowerSet) Contains(b Belnapian) bool {
	return p&(1<<b) != 0
}

// CouldBeNeither reports whether Neither is a member of this subset.
func (p PowerSet) CouldBeNeither() bool {
	return p&(1<<Neither) != 0
}

// CouldBeFalse reports whether False is a member of this subset.
func (p PowerSet) CouldBeFalse() bool {
	return p&(1<<False) != 0
}

// CouldBeTrue reports whether True is a member of this subset.
func (p PowerSet) CouldBeTrue() bool {
	return p&(1<<True) != 0
}

// CouldBeBoth reports whether Both is a member of this subset.
func (p PowerSet) CouldBeBoth() bool {
	return p&(1<<Both) != 0
}

// IsEmpty reports whether this subset holds no candidates.
func (p PowerSet) IsEmpty() bool {
	return p == 0
}

// IsUnknown reports whether this subset represents genuine ignorance, i.e.
// holds two or more candidates.  The empty set and singletons are not
// ignorance.
func (p PowerSet) IsUnknown() bool {
	return p&(p-1) != 0
}

func (p PowerSet) String() string {
	return maskString(uint8(p))
}
