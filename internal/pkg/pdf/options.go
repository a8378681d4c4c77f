// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pdf

func WithPaperSize(width, height float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = width
		o.PaperHeightInch = height
	}
}

func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTopInch = top
		o.MarginRightInch = right
		o.MarginBottomInch = bottom
		o.MarginLeftInch = left
	}
}

func WithLandscape(landscape bool) Option {
	return func(o *Options) {
		o.Landscape = landscape
	}
}

var (
	// PaperA4 8.27 x 11.69
	PaperA4 = WithPaperSize(8.27, 11.69)
	// PaperLetter 8.5 x 11
	PaperLetter = WithPaperSize(8.5, 11)
)

var (
	MarginsNormal = WithMargins(0.4, 0.4, 0.4, 0.4)
	MarginsNarrow = WithMargins(0.2, 0.2, 0.2, 0.2)
)

func defaultOptions() Options {
	opts := Options{}
	PaperA4(&opts)
	MarginsNormal(&opts)
	return opts
}
