package library

type Username = string

type ContentID = string

type Keyword = string
