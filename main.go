//go:build tinygo

package main

import (
	"fmt"
	"log/slog"
	"machine"
	"math/rand"
	"os"
	"time"

	"nifri2/pet-eyes/cmd"

	"tinygo.org/x/drivers/ssd1306"
)

// Build settings are set at compile time via -ldflags
// e.g. -ldflags="-X main.buildAddress=0x3d -X main.buildSeed=42 -X main.buildTick=50ms"
var (
	buildAddress    string
	buildSeed       string
	buildTick       string
	buildBlinkEvery string
)

const (
	i2cFrequency = 200000
	i2cSCL       = machine.GP27
	i2cSDA       = machine.GP26
)

var buttonPins = []machine.Pin{machine.GP13, machine.GP14, machine.GP15} // feed, play, pet

func main() {
	cmd.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	config := cmd.ParseSettings(cmd.BuildFlags{
		Address:    buildAddress,
		Seed:       buildSeed,
		Tick:       buildTick,
		BlinkEvery: buildBlinkEvery,
	})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	err := machine.I2C1.Configure(machine.I2CConfig{
		Frequency: i2cFrequency,
		SCL:       i2cSCL,
		SDA:       i2cSDA,
	})
	if err != nil {
		fmt.Println("Error configuring I2C:", err)
	}

	display := ssd1306.NewI2C(machine.I2C1)
	display.Configure(ssd1306.Config{
		Address: config.DisplayAddress,
		Width:   cmd.DisplayWidth,
		Height:  cmd.DisplayHeight,
	})
	display.ClearDisplay()

	clock := cmd.NewSystemClock()

	var buttons []cmd.ButtonSource
	for _, pin := range buttonPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
		buttons = append(buttons, cmd.NewButton(pin, clock))
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// two short LED blinks: display is up
	for i := 0; i < 2; i++ {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}

	cmd.RunPet(config, cmd.Hardware{
		Frame:   cmd.NewFrame(cmd.DisplayWidth, cmd.DisplayHeight, display),
		Buttons: buttons,
		Pet:     cmd.NewCare(clock),
		Clock:   clock,
		Rand:    rand.New(rand.NewSource(seed)),
	})
}
