// Package commands implements the college-schedule command line: viewing a
// group's week, exporting it to iCalendar and managing favorite groups.
package commands
