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

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

var _ Converter = (*ChromeDPConverter)(nil)

// ChromeDPConverter 通过 Chrome 的打印功能生成 PDF。
// 配置了 RemoteURL 就连远程的 headless chrome，否则在本机启动一个。
type ChromeDPConverter struct {
	RemoteURL string
	Timeout   time.Duration
}

func NewChromeDPConverter(remoteURL string, timeout time.Duration) *ChromeDPConverter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeDPConverter{
		RemoteURL: remoteURL,
		Timeout:   timeout,
	}
}

func (c *ChromeDPConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()
	allocCtx, allocCancel := c.allocator(ctx)
	defer allocCancel()
	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	params := page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(options.PaperWidthInch).
		WithPaperHeight(options.PaperHeightInch).
		WithMarginTop(options.MarginTopInch).
		WithMarginBottom(options.MarginBottomInch).
		WithMarginLeft(options.MarginLeftInch).
		WithMarginRight(options.MarginRightInch).
		WithLandscape(options.Landscape)

	var data []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("生成 PDF 失败: %w", err)
	}
	return data, nil
}

func (c *ChromeDPConverter) allocator(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.RemoteURL != "" {
		return chromedp.NewRemoteAllocator(ctx, c.RemoteURL)
	}
	return chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
}
