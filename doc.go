// Copyright 2026 The sheets2table Authors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheets2table converts Google Sheets worksheets into typed, column oriented tables.

The table package infers the column types (integer, float, boolean, string or timestamp) from the
effective cell values and number formats returned by the Google Sheets API, with spreadsheet serial
dates converted to timestamps. The reader package resolves a worksheet selector (all, by name or by
position), fetches the worksheets through an authorised session and assembles the tables.

sheets2table can be used from the command line and supports the following commands:

  - authorise, to authorise read-only access to Google Sheets and save the user credentials
  - get, to download one or all worksheets of a spreadsheet as TSV or XLSX
  - sheets, to list the worksheets of a spreadsheet
  - version
*/
package sheets2table
