package sysinfo

import (
	"context"
	"strings"
)

// OSTag identifies an operating system or distribution. The set of tags is
// closed; TagDefault stands for anything unrecognized.
type OSTag string

const (
	TagPop         OSTag = "pop"
	TagElementary  OSTag = "elementary"
	TagMint        OSTag = "mint"
	TagKali        OSTag = "kali"
	TagRaspbian    OSTag = "raspbian"
	TagUbuntu      OSTag = "ubuntu"
	TagDebian      OSTag = "debian"
	TagManjaro     OSTag = "manjaro"
	TagEndeavourOS OSTag = "endeavouros"
	TagArch        OSTag = "arch"
	TagRocky       OSTag = "rocky"
	TagAlmaLinux   OSTag = "almalinux"
	TagCentOS      OSTag = "centos"
	TagRedHat      OSTag = "redhat"
	TagFedora      OSTag = "fedora"
	TagOpenSUSE    OSTag = "opensuse"
	TagGentoo      OSTag = "gentoo"
	TagAlpine      OSTag = "alpine"
	TagVoid        OSTag = "void"
	TagNixOS       OSTag = "nixos"
	TagMacOS       OSTag = "macos"
	TagDefault     OSTag = "default"
)

// osPatterns is matched in order against lower-cased os-release content and
// the first hit wins. Derivatives are listed before the distributions they
// name in ID_LIKE, but there is no tie-break beyond this order.
var osPatterns = []struct {
	pattern string
	tag     OSTag
}{
	{"pop!_os", TagPop},
	{"elementary", TagElementary},
	{"mint", TagMint},
	{"kali", TagKali},
	{"raspbian", TagRaspbian},
	{"ubuntu", TagUbuntu},
	{"debian", TagDebian},
	{"manjaro", TagManjaro},
	{"endeavouros", TagEndeavourOS},
	{"arch", TagArch},
	{"rocky", TagRocky},
	{"almalinux", TagAlmaLinux},
	{"centos", TagCentOS},
	{"rhel", TagRedHat},
	{"fedora", TagFedora},
	{"opensuse", TagOpenSUSE},
	{"gentoo", TagGentoo},
	{"alpine", TagAlpine},
	{"void", TagVoid},
	{"nixos", TagNixOS},
}

// osReleasePaths are tried in order; the second is the freedesktop
// fallback location.
var osReleasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// Tags returns every known tag in match order, followed by TagMacOS and
// TagDefault.
func Tags() []OSTag {
	tags := make([]OSTag, 0, len(osPatterns)+2)
	for _, p := range osPatterns {
		tags = append(tags, p.tag)
	}
	return append(tags, TagMacOS, TagDefault)
}

// ParseOSTag resolves a user-supplied name to a known tag, ignoring case
// and surrounding whitespace.
func ParseOSTag(name string) (OSTag, bool) {
	want := OSTag(strings.ToLower(strings.TrimSpace(name)))
	for _, t := range Tags() {
		if t == want {
			return t, true
		}
	}
	return TagDefault, false
}

// MatchOSRelease returns the tag of the first pattern contained in content,
// compared case-insensitively, or TagDefault when none is.
func MatchOSRelease(content string) OSTag {
	lower := strings.ToLower(content)
	for _, p := range osPatterns {
		if strings.Contains(lower, p.pattern) {
			return p.tag
		}
	}
	return TagDefault
}

// OSIdentity returns the configured distro override when it is a known tag,
// otherwise the detected identity. Detection reads os-release; without one
// it falls back to TagMacOS on darwin and TagDefault elsewhere.
func (p *Prober) OSIdentity(ctx context.Context) OSTag {
	if p.opts.Distro != "" {
		if tag, ok := ParseOSTag(p.opts.Distro); ok {
			return tag
		}
		p.log.Warn("ignoring unknown distro override", "distro", p.opts.Distro)
	}

	strategies := make([]Strategy[OSTag], 0, len(osReleasePaths)+1)
	for _, path := range osReleasePaths {
		strategies = append(strategies, p.osFromRelease(path))
	}
	strategies = append(strategies, p.osFromPlatform)

	tag, err := FirstOf(ctx, strategies...)
	if err != nil {
		p.probeFailed("os", err)
		return TagDefault
	}
	return tag
}

// osFromRelease succeeds whenever the file is readable, even if nothing in
// it matches.
func (p *Prober) osFromRelease(path string) Strategy[OSTag] {
	return func(context.Context) (OSTag, error) {
		data, err := p.readFile(path)
		if err != nil {
			return TagDefault, err
		}
		return MatchOSRelease(string(data)), nil
	}
}

func (p *Prober) osFromPlatform(context.Context) (OSTag, error) {
	if p.goos == "darwin" {
		return TagMacOS, nil
	}
	return TagDefault, errUnsupported
}
