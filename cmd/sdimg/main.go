// sdimg builds a FAT32 SD card image with the file layout the firmware
// expects: the optional scaler matrix override and border image at the
// root, plus an empty screenshot directory.
package main

import (
	"flag"
	"fmt"
	"os"

	diskfs "github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
)

var (
	out    = flag.String("o", "sd.img", "output image file")
	sizeMB = flag.Int64("size", 64, "image size in MiB")
	border = flag.String("border", "", "border.bgr to include")
	matrix = flag.String("matrix", "", "gba_scaler_matrix.bin to include")
)

const usageString = `SD card image builder.

Usage: %s [flags]

`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func must[T any](ret T, err error) T {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return ret
}

func main() {
	flag.Usage = usage
	flag.Parse()

	d := must(diskfs.Create(*out, *sizeMB<<20, diskfs.Raw, diskfs.SectorSizeDefault))
	fs := must(d.CreateFilesystem(disk.FilesystemSpec{
		Partition:   0,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: "OAF",
	}))

	must(0, fs.Mkdir("/screenshots"))
	put(fs, "/border.bgr", *border)
	put(fs, "/gba_scaler_matrix.bin", *matrix)
}

func put(fs filesystem.FileSystem, dst, src string) {
	if src == "" {
		return
	}
	data := must(os.ReadFile(src))
	f := must(fs.OpenFile(dst, os.O_CREATE|os.O_RDWR))
	must(f.Write(data))
}
