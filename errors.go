/*
 * errors.go, part of goff.
 *
 * Copyright 2023 Ernesto Molina <emolina{at}ciqDOTuchileDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goff is developed at the Departamento de Quimica,
 * Universidad de Chile, Santiago, Chile.
 *
 */

package goff

//CError is the concrete error type of the goff package. It implements the
//goff.Error interface, carrying a message plus a "decoration" slice with the
//names of the functions the error has passed through.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the string given to the decoration slice of the error, and
//returns the resulting slice. If given an empty string, it just returns the
//current slice.
func (err CError) Decorate(deco string) []string {
	//This method does not use a pointer receiver but it still alters the
	//receiver, as err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//errDecorate asserts that err implements goff.Error and decorates it with the
//caller's name before returning it. It will panic on a non-goff.Error error,
//which got to be a programming mistake.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is the type used for the messages of panics raised by the
//"fundamental" functions of the library, so they can be told apart from other
//panics when recovering.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Here the messages for the most common panic situations
const (
	ErrNilData      PanicMsg = "goff: Nil data given"
	ErrAtomOutRange PanicMsg = "goff: Atom index out of range"
)
