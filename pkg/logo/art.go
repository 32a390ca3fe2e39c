package logo

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/hostfetch/pkg/sysinfo"
)

var emblems = map[sysinfo.OSTag]Emblem{
	sysinfo.TagPop: {Name: "Pop!_OS", Color: lipgloss.Color("#48B9C7"), art: `
    ______
   / __  /\
  / /_/ / /
 / ____/ /
/_/ ___\/
   /_/
`},
	sysinfo.TagElementary: {Name: "elementary OS", Color: lipgloss.Color("#64BAFF"), art: `
   _______
  / ____  \
 / /   /  /\
| |  _/  / |
 \ \/___/ /
  \______/
`},
	sysinfo.TagMint: {Name: "Linux Mint", Color: lipgloss.Color("#87CF3E"), art: `
 __________
|_          \
  | | _____ |
  | | | | | |
  | | | | | |
  | \_____/ |
  \_________/
`},
	sysinfo.TagKali: {Name: "Kali Linux", Color: lipgloss.Color("#367BF0"), art: `
      ,.....,
   ,,'       ',
  ,'    ,..    ',
 ,'   ,'   '.    \
 '   ,'      '.  '
      '.       '
        '-.___
`},
	sysinfo.TagRaspbian: {Name: "Raspbian", Color: lipgloss.Color("#C51A4A"), art: `
  .~~.   .~~.
 '. \ ' ' / .'
  .~ .~~~..~.
 : .~.'~'.~. :
~ (   ) (   ) ~
 ( : '~'.~.' )
  ~ .~ (   ) ~
   '~'  '~'
`},
	sysinfo.TagUbuntu: {Name: "Ubuntu", Color: lipgloss.Color("#E95420"), art: `
         _
     ---(_)
 _/  ---  \
(_) |   |
  \  --- _/
     ---(_)
`},
	sysinfo.TagDebian: {Name: "Debian", Color: lipgloss.Color("#D70A53"), art: `
  _____
 /  __ \
|  /    |
|  \___-
-_
  --_
`},
	sysinfo.TagManjaro: {Name: "Manjaro", Color: lipgloss.Color("#35BF5C"), art: `
||||||||| ||||
||||||||| ||||
||||      ||||
|||| |||| ||||
|||| |||| ||||
|||| |||| ||||
`},
	sysinfo.TagEndeavourOS: {Name: "EndeavourOS", Color: lipgloss.Color("#7F3FBF"), art: `
          /\
        //  \\
      //     \ \
    / /     _) )
  /_/___-- __-
  /____--
`},
	sysinfo.TagArch: {Name: "Arch Linux", Color: lipgloss.Color("#1793D1"), art: `
      /\
     /  \
    /\   \
   /      \
  /   ,,   \
 /   |  |  -\
/_-''    ''-_\
`},
	sysinfo.TagRocky: {Name: "Rocky Linux", Color: lipgloss.Color("#10B981"), art: `
    __wgliliiligw_,
  _williiiiiiliilililw,
 qilii:'  'liiiiiiliiil,
qliiil      'iliiiiliiliq
lii:'  ..     'liilil:'lp
 |l   .liili.    '::  _/
  '  .lililililwawaww'
`},
	sysinfo.TagAlmaLinux: {Name: "AlmaLinux", Color: lipgloss.Color("#FF4649"), art: `
   'c:.
  lkkkx, ..       ..   ,cc,
  okkkk:ckkx'  .lxkkx.okkkkd
  .:llcokkx'  :kkkxkko:xkkd,
 .xkkkkdood:  ;kx,  .lkxlll;
  xkkx.       xk'     xkkkkk:
`},
	sysinfo.TagCentOS: {Name: "CentOS", Color: lipgloss.Color("#932279"), art: `
 ____^____
 |\  |  /|
 | \ | / |
<---- ---->
 | / | \ |
 |/__|__\|
     v
`},
	sysinfo.TagRedHat: {Name: "Red Hat", Color: lipgloss.Color("#EE0000"), art: `
      _______
   __/       \__
  |  _________  |
 _|_/_________\_|_
(_________________)
`},
	sysinfo.TagFedora: {Name: "Fedora", Color: lipgloss.Color("#51A2DA"), art: `
      _____
     /   __)\
     |  /  \ \
  ___|  |__/ /
 / (_    _)_/
/ /  |  |
\ \__/  |
 \(_____/
`},
	sysinfo.TagOpenSUSE: {Name: "openSUSE", Color: lipgloss.Color("#73BA25"), art: `
  _______
__|   __ \
     / .\ \
     \__/ |
   _______|
   \_______
__________/
`},
	sysinfo.TagGentoo: {Name: "Gentoo", Color: lipgloss.Color("#54487A"), art: `
 _-----_
(       \
\    0   \
 \        )
 /      _/
(     _-
\____-
`},
	sysinfo.TagAlpine: {Name: "Alpine Linux", Color: lipgloss.Color("#0D597F"), art: `
   /\ /\
  /  \  \
 /    \  \
/      \  \
        \  \
`},
	sysinfo.TagVoid: {Name: "Void Linux", Color: lipgloss.Color("#478061"), art: `
    _______
 _ \______ -
| \  ___  \ |
| | /   \ | |
| | \___/ | |
| \______ \_|
 -_______\
`},
	sysinfo.TagNixOS: {Name: "NixOS", Color: lipgloss.Color("#7EBAE4"), art: `
  \\  \\ //
 ==\\__\\/ //
   //   \\//
==//     //==
 //\\___//
// /\\  \\==
  // \\  \\
`},
	sysinfo.TagMacOS: {Name: "macOS", Color: lipgloss.Color("#A2AAAD"), art: `
       .:'
    _ :'_
 .'\ \_\ '.
:          :
:         :
 :         :.
  '.______.'
`},
	sysinfo.TagDefault: {Name: "Linux", Color: lipgloss.Color("#FCC624"), art: `
    ___
   (.. |
   (<> |
  / __  \
 ( /  \ /|
_/\ __)/_)
\/-____\/
`},
}

func init() {
	for tag, e := range emblems {
		e.Tag = tag
		emblems[tag] = e
	}
}
