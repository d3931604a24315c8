// Package docs contiene la descripción OpenAPI servida en /swagger.
// Se arma a partir de las anotaciones @Router de los handlers (mismo formato
// que swag); router_test verifica que cada ruta registrada esté documentada.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/animals": {
            "post": {
                "summary": "Registrar un animal",
                "description": "Alta de un animal en el refugio. Fechas en formato YYYY-MM-DD.",
                "tags": [
                    "animals"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer <secreto del personal>",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "description": "Datos del animal",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / validación",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "summary": "Buscar animales",
                "description": "Lista animales ordenados por nombre. 'q' busca por nombre (sin distinguir mayúsculas).",
                "tags": [
                    "animals"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar en el nombre",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "normal, adopted, deceased, foster, other",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Solo residentes actuales",
                        "name": "resident",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animals.animalResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "filtro inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "summary": "Ficha de un animal",
                "tags": [
                    "animals"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "summary": "Actualizar un animal",
                "description": "PATCH parcial. Las fechas nullable se borran enviando null.",
                "tags": [
                    "animals"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.updateAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}/care": {
            "post": {
                "summary": "Registrar un cuidado",
                "description": "Vacuna, desparasitación o pesaje. Vacunas y desparasitaciones requieren un tipo activo del catálogo.",
                "tags": [
                    "care"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Evento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/care.recordEventRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/care.eventResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "animal / tipo no encontrado",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "summary": "Historial de cuidados",
                "description": "Historial de un animal, más reciente primero. 'kind' filtra por familia.",
                "tags": [
                    "care"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "vaccination, deworming, weight",
                        "name": "kind",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/care.eventResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}/care/{eventID}": {
            "delete": {
                "summary": "Borrar un evento de cuidado",
                "tags": [
                    "care"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Event ID",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}/notes": {
            "post": {
                "summary": "Agregar una nota a un animal",
                "tags": [
                    "notes"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Nota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/notes.addNoteRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/notes.noteResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "animal not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "summary": "Notas de un animal",
                "description": "Más reciente primero.",
                "tags": [
                    "notes"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Animal ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/notes.noteResponse"
                            }
                        }
                    },
                    "404": {
                        "description": "animal not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/appointments": {
            "post": {
                "summary": "Crear una cita",
                "description": "Los ids de animales o personal inexistentes se ignoran. Sin lugar se usa \"Rendez-vous\".",
                "tags": [
                    "appointments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Cita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.createAppointmentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "summary": "Listar citas",
                "tags": [
                    "appointments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "upcoming (default) o past",
                        "name": "when",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/appointments.appointmentResponse"
                            }
                        }
                    }
                }
            }
        },
        "/appointments/calendar": {
            "get": {
                "summary": "Feed de calendario",
                "description": "'from' y 'to' en YYYY-MM-DD, ambos días incluidos.",
                "tags": [
                    "appointments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Desde",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Hasta",
                        "name": "to",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/appointments.CalendarEntry"
                            }
                        }
                    }
                }
            }
        },
        "/appointments/{appointmentID}": {
            "get": {
                "summary": "Detalle de una cita",
                "tags": [
                    "appointments"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Appointment ID",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.appointmentResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Borrar una cita",
                "tags": [
                    "appointments"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Appointment ID",
                        "name": "appointmentID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/care-types": {
            "get": {
                "summary": "Catálogo de vacunas y antiparasitarios",
                "tags": [
                    "care"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "vaccination, deworming",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Solo tipos activos",
                        "name": "active",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/care.careTypeResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "summary": "Crear un tipo de vacuna o antiparasitario",
                "tags": [
                    "care"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tipo",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/care.createTypeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/care.careTypeResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "ya existe",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/care-types/{typeID}": {
            "patch": {
                "summary": "Activar o desactivar un tipo",
                "description": "Los eventos históricos de un tipo inactivo siguen siendo válidos.",
                "tags": [
                    "care"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Type ID",
                        "name": "typeID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Estado",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/care.updateTypeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/care.careTypeResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/dashboard": {
            "get": {
                "summary": "Totales y recordatorios pendientes",
                "tags": [
                    "dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.summaryResponse"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/notes": {
            "get": {
                "summary": "Buscar notas",
                "description": "Sin 'q' devuelve todas las notas, más reciente primero.",
                "tags": [
                    "notes"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Texto a buscar",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/notes.noteResponse"
                            }
                        }
                    }
                }
            }
        },
        "/reminders": {
            "get": {
                "summary": "Recordatorios de vacunas y desparasitaciones",
                "description": "Vencidos primero, luego por días restantes. Sin 'horizon' se usa el horizonte configurado del kind.",
                "tags": [
                    "reminders"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "vaccination o deworming",
                        "name": "kind",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Horizonte en días",
                        "name": "horizon",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/careplan.dueItemResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "kind / horizon inválidos",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/reports/activity": {
            "get": {
                "summary": "Informe mensual de actividad",
                "description": "Entradas/salidas por motivo y población inicio/fin. Sin year/month se usa el mes actual.",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Año",
                        "name": "year",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Mes (1-12)",
                        "name": "month",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Residentes no felinos a sumar en los totales mostrados",
                        "name": "other_species",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/reports.ActivityResponse"
                        }
                    },
                    "400": {
                        "description": "parámetros inválidos",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/staff": {
            "post": {
                "summary": "Alta de empleado o veterinario",
                "tags": [
                    "staff"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Miembro",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/staff.createMemberRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/staff.memberResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "summary": "Listar personal",
                "tags": [
                    "staff"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "employee, veterinarian",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Solo activos",
                        "name": "active",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/staff.memberResponse"
                            }
                        }
                    }
                }
            }
        },
        "/staff/{staffID}": {
            "get": {
                "summary": "Detalle de un miembro del personal",
                "tags": [
                    "staff"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Staff ID",
                        "name": "staffID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/staff.memberResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Dar de baja a un miembro del personal",
                "description": "Baja lógica: las citas históricas lo conservan.",
                "tags": [
                    "staff"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Staff ID",
                        "name": "staffID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/staff.memberResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/tasks": {
            "post": {
                "summary": "Crear una tarea recurrente",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tarea",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/tasks.createTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/tasks.taskResponse"
                        }
                    },
                    "400": {
                        "description": "validación / responsable inexistente",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "summary": "Listar tareas",
                "tags": [
                    "tasks"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Solo activas",
                        "name": "active",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/tasks.taskResponse"
                            }
                        }
                    }
                }
            }
        },
        "/tasks/due": {
            "get": {
                "summary": "Tareas vencidas o próximas",
                "description": "Las tareas nunca realizadas cuentan como vencidas.",
                "tags": [
                    "tasks"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Horizonte en días",
                        "name": "horizon",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/tasks.dueTaskResponse"
                            }
                        }
                    }
                }
            }
        },
        "/tasks/{taskID}": {
            "patch": {
                "summary": "Activar o desactivar una tarea",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "taskID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Estado",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/tasks.updateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/tasks.taskResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/tasks/{taskID}/complete": {
            "post": {
                "summary": "Marcar una tarea como hecha",
                "description": "Sin 'at' se usa el día actual.",
                "tags": [
                    "tasks"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Task ID",
                        "name": "taskID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fecha (YYYY-MM-DD)",
                        "name": "payload",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/tasks.completeTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/tasks.taskResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "birth_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "age_human": {
                    "type": "string"
                },
                "microchip": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "resident": {
                    "type": "boolean"
                },
                "entry_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "entry_reason": {
                    "type": "string"
                },
                "exit_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "exit_reason": {
                    "type": "string"
                },
                "photo": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "birth_date": {
                    "type": "string"
                },
                "microchip": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "entry_date": {
                    "type": "string"
                },
                "entry_reason": {
                    "type": "string"
                },
                "exit_date": {
                    "type": "string"
                },
                "exit_reason": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "animals.updateAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "microchip": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "entry_reason": {
                    "type": "string"
                },
                "exit_reason": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "appointments.CalendarEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "start": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "appointments.appointmentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "at": {
                    "type": "string",
                    "format": "date-time"
                },
                "location": {
                    "type": "string"
                },
                "animal_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "staff_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "notes": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "appointments.createAppointmentRequest": {
            "type": "object",
            "properties": {
                "at": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "animal_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "staff_ids": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "care.careTypeResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "care.createTypeRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "care.eventResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "animal_id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "type_id": {
                    "type": "string"
                },
                "type_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "primer": {
                    "type": "boolean"
                },
                "value": {
                    "type": "number"
                },
                "lot": {
                    "type": "string"
                },
                "veterinarian": {
                    "type": "string"
                },
                "reaction": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "recorded_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "care.recordEventRequest": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "type_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "primer": {
                    "type": "boolean"
                },
                "value": {
                    "type": "number"
                },
                "lot": {
                    "type": "string"
                },
                "veterinarian": {
                    "type": "string"
                },
                "reaction": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "care.updateTypeRequest": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                }
            }
        },
        "careplan.EntryCounts": {
            "type": "object",
            "properties": {
                "abandonment": {
                    "type": "integer"
                },
                "returned": {
                    "type": "integer"
                },
                "found": {
                    "type": "integer"
                }
            }
        },
        "careplan.ExitCounts": {
            "type": "object",
            "properties": {
                "placed": {
                    "type": "integer"
                },
                "owner": {
                    "type": "integer"
                },
                "deceased": {
                    "type": "integer"
                },
                "escaped": {
                    "type": "integer"
                },
                "transferred": {
                    "type": "integer"
                }
            }
        },
        "careplan.Uncategorized": {
            "type": "object",
            "properties": {
                "animal_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date-time"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "careplan.dueItemResponse": {
            "type": "object",
            "properties": {
                "animal_id": {
                    "type": "string"
                },
                "animal_name": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "type_id": {
                    "type": "string"
                },
                "type_name": {
                    "type": "string"
                },
                "last_date": {
                    "type": "string"
                },
                "primer": {
                    "type": "boolean"
                },
                "next_due": {
                    "type": "string"
                },
                "days_left": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "dashboard.counterResponse": {
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string"
                },
                "type_id": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "late": {
                    "type": "integer"
                },
                "soon": {
                    "type": "integer"
                }
            }
        },
        "dashboard.summaryResponse": {
            "type": "object",
            "properties": {
                "total_animals": {
                    "type": "integer"
                },
                "residents": {
                    "type": "integer"
                },
                "upcoming_appointments": {
                    "type": "integer"
                },
                "active_staff": {
                    "type": "integer"
                },
                "care_types": {
                    "type": "integer"
                },
                "reminders": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dashboard.counterResponse"
                    }
                },
                "tasks_late": {
                    "type": "integer"
                },
                "tasks_soon": {
                    "type": "integer"
                }
            }
        },
        "notes.addNoteRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                }
            }
        },
        "notes.noteResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "animal_id": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "reports.ActivityResponse": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "start": {
                    "type": "string"
                },
                "end": {
                    "type": "string"
                },
                "count_start": {
                    "type": "integer"
                },
                "entries": {
                    "$ref": "#/definitions/careplan.EntryCounts"
                },
                "entries_total": {
                    "type": "integer"
                },
                "exits": {
                    "$ref": "#/definitions/careplan.ExitCounts"
                },
                "exits_total": {
                    "type": "integer"
                },
                "count_end": {
                    "type": "integer"
                },
                "other_species": {
                    "type": "integer"
                },
                "display_start": {
                    "type": "integer"
                },
                "display_end": {
                    "type": "integer"
                },
                "uncategorized": {
                    "$ref": "#/definitions/reports.uncategorizedResponse"
                }
            }
        },
        "reports.uncategorizedResponse": {
            "type": "object",
            "properties": {
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/careplan.Uncategorized"
                    }
                },
                "exits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/careplan.Uncategorized"
                    }
                }
            }
        },
        "staff.createMemberRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "staff.memberResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "tasks.completeTaskRequest": {
            "type": "object",
            "properties": {
                "at": {
                    "type": "string"
                }
            }
        },
        "tasks.createTaskRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "interval_days": {
                    "type": "integer"
                },
                "assignee_id": {
                    "type": "string"
                }
            }
        },
        "tasks.dueTaskResponse": {
            "type": "object",
            "properties": {
                "task": {
                    "$ref": "#/definitions/tasks.taskResponse"
                },
                "next_due": {
                    "type": "string"
                },
                "days_left": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "tasks.taskResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "interval_days": {
                    "type": "integer"
                },
                "last_done_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "assignee_id": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "tasks.updateTaskRequest": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cat Shelter Admin API",
	Description:      "Administración del refugio: animales, cuidados, recordatorios y reportes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
