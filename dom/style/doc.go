/*
Package style holds the inline styling of element nodes.

An element's inline style is the list of declarations held in its "style"
attribute. Package style knows which CSS properties an inline style
accepts, converts between the scripting spelling of property names
("backgroundColor") and the stylesheet spelling ("background-color"), and
reads and writes declarations through type Declaration.

Parsing of declarations is done with https://github.com/aymerick/douceur.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style
