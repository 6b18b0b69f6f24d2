package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/savetheworld/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// BannerUI holds the action button shown on the level complete banner
type BannerUI struct {
	UI *ebitenui.UI

	// OnActivate runs when the button is clicked
	OnActivate func()

	button     *widget.Button
	buttonFace text.Face
}

// NewBannerUI creates the banner button with ebitenui
func NewBannerUI(onActivate func()) *BannerUI {
	b := &BannerUI{
		OnActivate: onActivate,
	}

	b.loadFonts()
	b.buildUI()

	return b
}

func (b *BannerUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	b.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
}

func (b *BannerUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	b.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 40),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(b.buttonImage()),
		widget.ButtonOpts.Text(cfg.LevelComplete.NextLabel, &b.buttonFace, &widget.ButtonTextColor{
			Idle:     cfg.LevelComplete.TextColor,
			Disabled: color.RGBA{120, 120, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if b.OnActivate != nil {
				b.OnActivate()
			}
		}),
	)
	rootContainer.AddChild(b.button)

	b.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (b *BannerUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.LevelComplete.ButtonColor)
	hover := image.NewNineSliceColor(cfg.LevelComplete.ButtonHover)
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetLabel changes the button text ("Next Level" or "Restart Game")
func (b *BannerUI) SetLabel(label string) {
	if textWidget := b.button.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

// Label returns the current button text
func (b *BannerUI) Label() string {
	if textWidget := b.button.Text(); textWidget != nil {
		return textWidget.Label
	}
	return ""
}

// Update calls the UI's Update method
func (b *BannerUI) Update() {
	b.UI.Update()
}

func (b *BannerUI) Draw(screen *ebiten.Image) {
	b.UI.Draw(screen)
}
