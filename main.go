package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"runtime/pprof"

	"github.com/golang/glog"
	"golang.org/x/term"

	"github.com/jyane/jgba/gba"
)

var (
	biosPath   = flag.String("bios", "", "path to GBA BIOS image")
	romPath    = flag.String("rom", "", "path to GBA ROM file")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	monitor    = flag.Bool("monitor", true, "run the bus monitor on stdin")
)

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	console, err := gba.NewConsole()
	if err != nil {
		glog.Fatalf("Failed to initiate Console (%s): %v", console.Status.Kind, console.Status.Message)
	}
	defer console.Close()
	if *biosPath != "" {
		buf, err := readFile(*biosPath)
		if err != nil {
			glog.Fatalln("Failed to read: " + *biosPath)
		}
		bios, err := gba.NewBIOS(buf)
		if err != nil {
			glog.Fatalln("Failed to load BIOS: ", err)
		}
		console.LoadBIOS(bios)
	}
	if *romPath != "" {
		buf, err := readFile(*romPath)
		if err != nil {
			glog.Fatalln("Failed to read: " + *romPath)
		}
		cartridge, err := gba.NewCartridge(buf)
		if err != nil {
			glog.Fatalln("Failed to load cartridge: ", err)
		}
		console.Insert(cartridge)
		fmt.Println(cartridge)
	}
	if !*monitor {
		return
	}
	m := gba.NewMonitor(console, os.Stdin, os.Stdout)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		m.Prompt = ">> "
	}
	if err := m.Run(); err != nil {
		glog.Errorln("Monitor stopped: ", err)
	}
}
